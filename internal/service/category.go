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

type CategoryService struct {
	api    *api.Client
	store  *store.Store[model.Category]
	notify notify.Notifier
}

func NewCategoryService(c *api.Client, n notify.Notifier) *CategoryService {
	return &CategoryService{api: c, store: store.New[model.Category](), notify: n}
}

func (s *CategoryService) Store() *store.Store[model.Category] { return s.store }

// CategoryQuery carries list parameters as the stringified values the wire
// contract expects.
type CategoryQuery struct {
	Page                 string
	Limit                string
	Search               string
	IncludeDeleted       string
	IncludeSubcategories string
}

func (q CategoryQuery) values() url.Values {
	v := url.Values{}
	setIf(v, "page", q.Page)
	setIf(v, "limit", q.Limit)
	setIf(v, "search", q.Search)
	setIf(v, "includeDeleted", q.IncludeDeleted)
	setIf(v, "includeSubcategories", q.IncludeSubcategories)
	return v
}

type CreateCategory struct {
	Name string `json:"name" validate:"required"`
}

type UpdateCategory struct {
	Name *string `json:"name,omitempty"`
}

type categoryListResponse struct {
	Message string `json:"message"`
	Result  struct {
		Categories      []model.Category `json:"categories"`
		TotalCategories int              `json:"totalCategories"`
		TotalPages      int              `json:"totalPages"`
		CurrentPage     int              `json:"currentPage"`
		HasNextPage     bool             `json:"hasNextPage"`
		HasPrevPage     bool             `json:"hasPrevPage"`
	} `json:"result"`
}

type categoryResponse struct {
	Message string         `json:"message"`
	Result  model.Category `json:"result"`
}

func (s *CategoryService) List(ctx context.Context, q CategoryQuery) (*model.Page[model.Category], error) {
	fence := s.store.BeginList()
	var resp categoryListResponse
	if err := s.api.Get(ctx, "categories", q.values(), &resp); err != nil {
		s.store.FailList(fence, api.ErrorMessage(err))
		return nil, err
	}
	page := &model.Page[model.Category]{
		Items:       resp.Result.Categories,
		Total:       resp.Result.TotalCategories,
		TotalPages:  resp.Result.TotalPages,
		CurrentPage: resp.Result.CurrentPage,
		HasNextPage: resp.Result.HasNextPage,
		HasPrevPage: resp.Result.HasPrevPage,
	}
	s.store.ResolveList(fence, page)
	return page, nil
}

func (s *CategoryService) Create(ctx context.Context, payload CreateCategory) (*model.Category, error) {
	s.store.BeginMutation()
	if err := validate.Struct(payload); err != nil {
		s.notify.Error("Error: el nombre es obligatorio")
		s.store.FailMutation("El nombre es obligatorio")
		return nil, err
	}
	var resp categoryResponse
	if err := s.api.Post(ctx, "categories", payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Categoría creada")
	s.store.CreateDone()
	return &resp.Result, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, payload UpdateCategory) (*model.Category, error) {
	s.store.BeginMutation()
	var resp categoryResponse
	if err := s.api.Put(ctx, "categories/"+id, payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Categoría actualizada")
	s.store.UpdateDone(resp.Result)
	return &resp.Result, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	s.store.BeginMutation()
	if err := s.api.Delete(ctx, "categories/"+id, nil); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return err
	}
	now := time.Now()
	s.notify.Success("Categoría eliminada")
	s.store.DeleteDone(id, func(c *model.Category) {
		c.IsDeleted = true
		c.DeletedAt = &now
	})
	return nil
}

func (s *CategoryService) Restore(ctx context.Context, id string) (*model.Category, error) {
	s.store.BeginMutation()
	var resp categoryResponse
	if err := s.api.Patch(ctx, "categories/"+id+"/restore", nil, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Categoría restaurada")
	s.store.RestoreDone(resp.Result)
	return &resp.Result, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*model.Category, error) {
	s.store.BeginMutation()
	var resp categoryResponse
	if err := s.api.Get(ctx, "categories/"+id, nil, &resp); err != nil {
		s.store.FailMutation(api.ErrorMessage(err))
		return nil, err
	}
	s.store.SelectDone(resp.Result)
	return &resp.Result, nil
}
