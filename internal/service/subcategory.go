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

type SubcategoryService struct {
	api    *api.Client
	store  *store.Store[model.Subcategory]
	notify notify.Notifier
}

func NewSubcategoryService(c *api.Client, n notify.Notifier) *SubcategoryService {
	return &SubcategoryService{api: c, store: store.New[model.Subcategory](), notify: n}
}

func (s *SubcategoryService) Store() *store.Store[model.Subcategory] { return s.store }

type SubcategoryQuery struct {
	Page            string
	Limit           string
	Search          string
	CategoryID      string
	IncludeDeleted  string
	IncludeCategory string
}

func (q SubcategoryQuery) values() url.Values {
	v := url.Values{}
	setIf(v, "page", q.Page)
	setIf(v, "limit", q.Limit)
	setIf(v, "search", q.Search)
	setIf(v, "categoryId", q.CategoryID)
	setIf(v, "includeDeleted", q.IncludeDeleted)
	setIf(v, "includeCategory", q.IncludeCategory)
	return v
}

type CreateSubcategory struct {
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"categoryId" validate:"required"`
}

type UpdateSubcategory struct {
	Name       *string `json:"name,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
}

type subcategoryListResponse struct {
	Message string `json:"message"`
	Result  struct {
		Subcategories      []model.Subcategory `json:"subcategories"`
		TotalSubcategories int                 `json:"totalSubcategories"`
		TotalPages         int                 `json:"totalPages"`
		CurrentPage        int                 `json:"currentPage"`
		HasNextPage        bool                `json:"hasNextPage"`
		HasPrevPage        bool                `json:"hasPrevPage"`
	} `json:"result"`
}

type subcategoryResponse struct {
	Message string            `json:"message"`
	Result  model.Subcategory `json:"result"`
}

func (s *SubcategoryService) List(ctx context.Context, q SubcategoryQuery) (*model.Page[model.Subcategory], error) {
	fence := s.store.BeginList()
	var resp subcategoryListResponse
	if err := s.api.Get(ctx, "subcategories", q.values(), &resp); err != nil {
		s.store.FailList(fence, api.ErrorMessage(err))
		return nil, err
	}
	page := &model.Page[model.Subcategory]{
		Items:       resp.Result.Subcategories,
		Total:       resp.Result.TotalSubcategories,
		TotalPages:  resp.Result.TotalPages,
		CurrentPage: resp.Result.CurrentPage,
		HasNextPage: resp.Result.HasNextPage,
		HasPrevPage: resp.Result.HasPrevPage,
	}
	s.store.ResolveList(fence, page)
	return page, nil
}

func (s *SubcategoryService) Create(ctx context.Context, payload CreateSubcategory) (*model.Subcategory, error) {
	s.store.BeginMutation()
	if err := validate.Struct(payload); err != nil {
		s.notify.Error("Error: nombre y categoría son obligatorios")
		s.store.FailMutation("Nombre y categoría son obligatorios")
		return nil, err
	}
	var resp subcategoryResponse
	if err := s.api.Post(ctx, "subcategories", payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Subcategoría creada")
	s.store.CreateDone()
	return &resp.Result, nil
}

func (s *SubcategoryService) Update(ctx context.Context, id string, payload UpdateSubcategory) (*model.Subcategory, error) {
	s.store.BeginMutation()
	var resp subcategoryResponse
	if err := s.api.Put(ctx, "subcategories/"+id, payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Subcategoría actualizada")
	s.store.UpdateDone(resp.Result)
	return &resp.Result, nil
}

func (s *SubcategoryService) Delete(ctx context.Context, id string) error {
	s.store.BeginMutation()
	if err := s.api.Delete(ctx, "subcategories/"+id, nil); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return err
	}
	now := time.Now()
	s.notify.Success("Subcategoría eliminada")
	s.store.DeleteDone(id, func(sc *model.Subcategory) {
		sc.IsDeleted = true
		sc.DeletedAt = &now
	})
	return nil
}

func (s *SubcategoryService) Restore(ctx context.Context, id string) (*model.Subcategory, error) {
	s.store.BeginMutation()
	var resp subcategoryResponse
	if err := s.api.Patch(ctx, "subcategories/"+id+"/restore", nil, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Subcategoría restaurada")
	s.store.RestoreDone(resp.Result)
	return &resp.Result, nil
}

func (s *SubcategoryService) GetByID(ctx context.Context, id string) (*model.Subcategory, error) {
	s.store.BeginMutation()
	var resp subcategoryResponse
	if err := s.api.Get(ctx, "subcategories/"+id, nil, &resp); err != nil {
		s.store.FailMutation(api.ErrorMessage(err))
		return nil, err
	}
	s.store.SelectDone(resp.Result)
	return &resp.Result, nil
}
