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

type IngredientService struct {
	api    *api.Client
	store  *store.Store[model.Ingredient]
	notify notify.Notifier
}

func NewIngredientService(c *api.Client, n notify.Notifier) *IngredientService {
	return &IngredientService{api: c, store: store.New[model.Ingredient](), notify: n}
}

func (s *IngredientService) Store() *store.Store[model.Ingredient] { return s.store }

type IngredientQuery struct {
	Page           string
	Limit          string
	Search         string
	IncludeDeleted string
}

func (q IngredientQuery) values() url.Values {
	v := url.Values{}
	setIf(v, "page", q.Page)
	setIf(v, "limit", q.Limit)
	setIf(v, "search", q.Search)
	setIf(v, "includeDeleted", q.IncludeDeleted)
	return v
}

type CreateIngredient struct {
	Name string `json:"name" validate:"required"`
}

type UpdateIngredient struct {
	Name *string `json:"name,omitempty"`
}

type ingredientListResponse struct {
	Message string `json:"message"`
	Result  struct {
		Ingredients      []model.Ingredient `json:"ingredients"`
		TotalIngredients int                `json:"totalIngredients"`
		TotalPages       int                `json:"totalPages"`
		CurrentPage      int                `json:"currentPage"`
		HasNextPage      bool               `json:"hasNextPage"`
		HasPrevPage      bool               `json:"hasPrevPage"`
	} `json:"result"`
}

type ingredientResponse struct {
	Message string           `json:"message"`
	Result  model.Ingredient `json:"result"`
}

func (s *IngredientService) List(ctx context.Context, q IngredientQuery) (*model.Page[model.Ingredient], error) {
	fence := s.store.BeginList()
	var resp ingredientListResponse
	if err := s.api.Get(ctx, "ingredients", q.values(), &resp); err != nil {
		s.store.FailList(fence, api.ErrorMessage(err))
		return nil, err
	}
	page := &model.Page[model.Ingredient]{
		Items:       resp.Result.Ingredients,
		Total:       resp.Result.TotalIngredients,
		TotalPages:  resp.Result.TotalPages,
		CurrentPage: resp.Result.CurrentPage,
		HasNextPage: resp.Result.HasNextPage,
		HasPrevPage: resp.Result.HasPrevPage,
	}
	s.store.ResolveList(fence, page)
	return page, nil
}

func (s *IngredientService) Create(ctx context.Context, payload CreateIngredient) (*model.Ingredient, error) {
	s.store.BeginMutation()
	if err := validate.Struct(payload); err != nil {
		s.notify.Error("Error: el nombre es obligatorio")
		s.store.FailMutation("El nombre es obligatorio")
		return nil, err
	}
	var resp ingredientResponse
	if err := s.api.Post(ctx, "ingredients", payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Ingrediente creado")
	s.store.CreateDone()
	return &resp.Result, nil
}

func (s *IngredientService) Update(ctx context.Context, id string, payload UpdateIngredient) (*model.Ingredient, error) {
	s.store.BeginMutation()
	var resp ingredientResponse
	if err := s.api.Put(ctx, "ingredients/"+id, payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Ingrediente actualizado")
	s.store.UpdateDone(resp.Result)
	return &resp.Result, nil
}

func (s *IngredientService) Delete(ctx context.Context, id string) error {
	s.store.BeginMutation()
	if err := s.api.Delete(ctx, "ingredients/"+id, nil); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return err
	}
	now := time.Now()
	s.notify.Success("Ingrediente eliminado")
	s.store.DeleteDone(id, func(i *model.Ingredient) {
		i.IsDeleted = true
		i.DeletedAt = &now
	})
	return nil
}

func (s *IngredientService) Restore(ctx context.Context, id string) (*model.Ingredient, error) {
	s.store.BeginMutation()
	var resp ingredientResponse
	if err := s.api.Patch(ctx, "ingredients/"+id+"/restore", nil, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Ingrediente restaurado")
	s.store.RestoreDone(resp.Result)
	return &resp.Result, nil
}

func (s *IngredientService) GetByID(ctx context.Context, id string) (*model.Ingredient, error) {
	s.store.BeginMutation()
	var resp ingredientResponse
	if err := s.api.Get(ctx, "ingredients/"+id, nil, &resp); err != nil {
		s.store.FailMutation(api.ErrorMessage(err))
		return nil, err
	}
	s.store.SelectDone(resp.Result)
	return &resp.Result, nil
}
