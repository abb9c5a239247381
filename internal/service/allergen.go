package service

import (
	"context"
	"net/url"
	"time"

	"BodegonAdmin/internal/api"
	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/notify"
	"BodegonAdmin/internal/store"
)

type AllergenService struct {
	api    *api.Client
	store  *store.Store[model.Allergen]
	notify notify.Notifier
}

func NewAllergenService(c *api.Client, n notify.Notifier) *AllergenService {
	return &AllergenService{api: c, store: store.New[model.Allergen](), notify: n}
}

func (s *AllergenService) Store() *store.Store[model.Allergen] { return s.store }

type AllergenQuery struct {
	Page           string
	Limit          string
	Search         string
	IncludeDeleted string
}

func (q AllergenQuery) values() url.Values {
	v := url.Values{}
	setIf(v, "page", q.Page)
	setIf(v, "limit", q.Limit)
	setIf(v, "search", q.Search)
	setIf(v, "includeDeleted", q.IncludeDeleted)
	return v
}

type CreateAllergen struct {
	Name string `json:"name" validate:"required"`
}

type UpdateAllergen struct {
	Name *string `json:"name,omitempty"`
}

type allergenListResponse struct {
	Message string `json:"message"`
	Result  struct {
		Allergens      []model.Allergen `json:"allergens"`
		TotalAllergens int              `json:"totalAllergens"`
		TotalPages     int              `json:"totalPages"`
		CurrentPage    int              `json:"currentPage"`
		HasNextPage    bool             `json:"hasNextPage"`
		HasPrevPage    bool             `json:"hasPrevPage"`
	} `json:"result"`
}

type allergenResponse struct {
	Message string         `json:"message"`
	Result  model.Allergen `json:"result"`
}

func (s *AllergenService) List(ctx context.Context, q AllergenQuery) (*model.Page[model.Allergen], error) {
	fence := s.store.BeginList()
	var resp allergenListResponse
	if err := s.api.Get(ctx, "allergens", q.values(), &resp); err != nil {
		s.store.FailList(fence, api.ErrorMessage(err))
		return nil, err
	}
	page := &model.Page[model.Allergen]{
		Items:       resp.Result.Allergens,
		Total:       resp.Result.TotalAllergens,
		TotalPages:  resp.Result.TotalPages,
		CurrentPage: resp.Result.CurrentPage,
		HasNextPage: resp.Result.HasNextPage,
		HasPrevPage: resp.Result.HasPrevPage,
	}
	s.store.ResolveList(fence, page)
	return page, nil
}

func (s *AllergenService) Create(ctx context.Context, payload CreateAllergen) (*model.Allergen, error) {
	s.store.BeginMutation()
	if err := validate.Struct(payload); err != nil {
		s.notify.Error("Error: el nombre es obligatorio")
		s.store.FailMutation("El nombre es obligatorio")
		return nil, err
	}
	var resp allergenResponse
	if err := s.api.Post(ctx, "allergens", payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Alérgeno creado")
	s.store.CreateDone()
	return &resp.Result, nil
}

func (s *AllergenService) Update(ctx context.Context, id string, payload UpdateAllergen) (*model.Allergen, error) {
	s.store.BeginMutation()
	var resp allergenResponse
	if err := s.api.Put(ctx, "allergens/"+id, payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Alérgeno actualizado")
	s.store.UpdateDone(resp.Result)
	return &resp.Result, nil
}

func (s *AllergenService) Delete(ctx context.Context, id string) error {
	s.store.BeginMutation()
	if err := s.api.Delete(ctx, "allergens/"+id, nil); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return err
	}
	now := time.Now()
	s.notify.Success("Alérgeno eliminado")
	s.store.DeleteDone(id, func(a *model.Allergen) {
		a.IsDeleted = true
		a.DeletedAt = &now
	})
	return nil
}

func (s *AllergenService) Restore(ctx context.Context, id string) (*model.Allergen, error) {
	s.store.BeginMutation()
	var resp allergenResponse
	if err := s.api.Patch(ctx, "allergens/"+id+"/restore", nil, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Alérgeno restaurado")
	s.store.RestoreDone(resp.Result)
	return &resp.Result, nil
}

func (s *AllergenService) GetByID(ctx context.Context, id string) (*model.Allergen, error) {
	s.store.BeginMutation()
	var resp allergenResponse
	if err := s.api.Get(ctx, "allergens/"+id, nil, &resp); err != nil {
		s.store.FailMutation(api.ErrorMessage(err))
		return nil, err
	}
	s.store.SelectDone(resp.Result)
	return &resp.Result, nil
}
