package service

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"BodegonAdmin/internal/api"
	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/notify"
	"BodegonAdmin/internal/store"
)

type DishService struct {
	api    *api.Client
	store  *store.Store[model.Dish]
	notify notify.Notifier
}

func NewDishService(c *api.Client, n notify.Notifier) *DishService {
	return &DishService{api: c, store: store.New[model.Dish](), notify: n}
}

func (s *DishService) Store() *store.Store[model.Dish] { return s.store }

type DishQuery struct {
	Page             string
	Limit            string
	Search           string
	CategoryID       string
	SubcategoryID    string
	IncludeDeleted   string
	IncludeRelations string
}

func (q DishQuery) values() url.Values {
	v := url.Values{}
	setIf(v, "page", q.Page)
	setIf(v, "limit", q.Limit)
	setIf(v, "search", q.Search)
	setIf(v, "categoryId", q.CategoryID)
	setIf(v, "subcategoryId", q.SubcategoryID)
	setIf(v, "includeDeleted", q.IncludeDeleted)
	setIf(v, "includeRelations", q.IncludeRelations)
	return v
}

type CreateDish struct {
	Name          string  `validate:"required"`
	Description   string  `validate:"required"`
	Price         float64 `validate:"gt=0"`
	CategoryID    string  `validate:"required"`
	SubcategoryID string
	IngredientIDs []string
	AllergenIDs   []string
	Image         *ImageFile
}

// UpdateDish uses pointers throughout: a nil field is omitted from the
// multipart payload entirely, which is how the backend distinguishes "leave
// alone" from "set to empty".
type UpdateDish struct {
	Name          *string
	Description   *string
	Price         *float64
	CategoryID    *string
	SubcategoryID *string
	IngredientIDs *[]string
	AllergenIDs   *[]string
	Image         *ImageFile
}

type dishListResponse struct {
	Message string `json:"message"`
	Result  struct {
		Dishes      []model.Dish `json:"dishes"`
		TotalDishes int          `json:"totalDishes"`
		TotalPages  int          `json:"totalPages"`
		CurrentPage int          `json:"currentPage"`
		HasNextPage bool         `json:"hasNextPage"`
		HasPrevPage bool         `json:"hasPrevPage"`
	} `json:"result"`
}

type dishResponse struct {
	Message string     `json:"message"`
	Result  model.Dish `json:"result"`
}

func (s *DishService) List(ctx context.Context, q DishQuery) (*model.Page[model.Dish], error) {
	fence := s.store.BeginList()
	var resp dishListResponse
	if err := s.api.Get(ctx, "dishes", q.values(), &resp); err != nil {
		s.store.FailList(fence, api.ErrorMessage(err))
		return nil, err
	}
	page := &model.Page[model.Dish]{
		Items:       resp.Result.Dishes,
		Total:       resp.Result.TotalDishes,
		TotalPages:  resp.Result.TotalPages,
		CurrentPage: resp.Result.CurrentPage,
		HasNextPage: resp.Result.HasNextPage,
		HasPrevPage: resp.Result.HasPrevPage,
	}
	s.store.ResolveList(fence, page)
	return page, nil
}

func (p CreateDish) form() (*api.Form, error) {
	f := &api.Form{}
	f.Set("name", p.Name)
	f.Set("description", p.Description)
	f.Set("price", strconv.FormatFloat(p.Price, 'f', -1, 64))
	f.Set("categoryId", p.CategoryID)
	if p.SubcategoryID != "" {
		f.Set("subcategoryId", p.SubcategoryID)
	}
	// id arrays ride as JSON strings inside the form
	ingredients := p.IngredientIDs
	if ingredients == nil {
		ingredients = []string{}
	}
	allergens := p.AllergenIDs
	if allergens == nil {
		allergens = []string{}
	}
	if err := f.SetJSON("ingredientIds", ingredients); err != nil {
		return nil, err
	}
	if err := f.SetJSON("allergenIds", allergens); err != nil {
		return nil, err
	}
	if p.Image != nil {
		f.SetFile("image", p.Image.Name, p.Image.Content)
	}
	return f, nil
}

func (p UpdateDish) form() (*api.Form, error) {
	f := &api.Form{}
	if p.Name != nil {
		f.Set("name", *p.Name)
	}
	if p.Description != nil {
		f.Set("description", *p.Description)
	}
	if p.Price != nil {
		f.Set("price", strconv.FormatFloat(*p.Price, 'f', -1, 64))
	}
	if p.CategoryID != nil {
		f.Set("categoryId", *p.CategoryID)
	}
	if p.SubcategoryID != nil {
		f.Set("subcategoryId", *p.SubcategoryID)
	}
	if p.IngredientIDs != nil {
		if err := f.SetJSON("ingredientIds", *p.IngredientIDs); err != nil {
			return nil, err
		}
	}
	if p.AllergenIDs != nil {
		if err := f.SetJSON("allergenIds", *p.AllergenIDs); err != nil {
			return nil, err
		}
	}
	if p.Image != nil {
		f.SetFile("image", p.Image.Name, p.Image.Content)
	}
	return f, nil
}

func (s *DishService) Create(ctx context.Context, payload CreateDish) (*model.Dish, error) {
	s.store.BeginMutation()
	if err := validate.Struct(payload); err != nil {
		s.notify.Error("Error inesperado al crear plato")
		s.store.FailMutation("Datos del plato incompletos")
		return nil, err
	}
	form, err := payload.form()
	if err != nil {
		s.store.FailMutation(api.FallbackMessage)
		return nil, err
	}
	var resp dishResponse
	if err := s.api.PostForm(ctx, "dishes", form, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Plato creado exitosamente")
	s.store.CreateDone()
	return &resp.Result, nil
}

func (s *DishService) Update(ctx context.Context, id string, payload UpdateDish) (*model.Dish, error) {
	s.store.BeginMutation()
	form, err := payload.form()
	if err != nil {
		s.store.FailMutation(api.FallbackMessage)
		return nil, err
	}
	var resp dishResponse
	if err := s.api.PutForm(ctx, "dishes/"+id, form, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Plato actualizado exitosamente")
	s.store.UpdateDone(resp.Result)
	return &resp.Result, nil
}

func (s *DishService) Delete(ctx context.Context, id string) error {
	s.store.BeginMutation()
	if err := s.api.Delete(ctx, "dishes/"+id, nil); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return err
	}
	now := time.Now()
	s.notify.Success("Plato eliminado")
	s.store.DeleteDone(id, func(d *model.Dish) {
		d.IsDeleted = true
		d.DeletedAt = &now
	})
	return nil
}

func (s *DishService) Restore(ctx context.Context, id string) (*model.Dish, error) {
	s.store.BeginMutation()
	var resp dishResponse
	if err := s.api.Patch(ctx, "dishes/"+id+"/restore", nil, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Plato restaurado")
	s.store.RestoreDone(resp.Result)
	return &resp.Result, nil
}

func (s *DishService) GetByID(ctx context.Context, id string) (*model.Dish, error) {
	s.store.BeginMutation()
	var resp dishResponse
	if err := s.api.Get(ctx, "dishes/"+id, nil, &resp); err != nil {
		s.store.FailMutation(api.ErrorMessage(err))
		return nil, err
	}
	s.store.SelectDone(resp.Result)
	return &resp.Result, nil
}
