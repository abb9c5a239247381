package controller

import (
	"context"
	"sync"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

// Subcategories adds a category filter on top of the standard page state and
// keeps the category reference list around for the create/edit form selects.
type Subcategories struct {
	pageController[model.Subcategory]
	svc        *service.SubcategoryService
	categories *service.CategoryService
	limit      int

	mu         sync.Mutex
	categoryID string
}

func NewSubcategories(svc *service.SubcategoryService, categories *service.CategoryService, limit int) *Subcategories {
	c := &Subcategories{svc: svc, categories: categories, limit: limit}
	c.pageController = newPageController(svc.Store(), c.load)
	return c
}

func (c *Subcategories) load(ctx context.Context, page int, search string, includeDeleted bool) error {
	_, err := c.svc.List(ctx, service.SubcategoryQuery{
		Page:            itoa(page),
		Limit:           itoa(c.limit),
		Search:          search,
		CategoryID:      c.CategoryFilter(),
		IncludeDeleted:  boolStr(includeDeleted),
		IncludeCategory: "true",
	})
	return err
}

// PreloadReferences fetches the category list the form selects draw from. One
// big page, the selects are not paginated.
func (c *Subcategories) PreloadReferences(ctx context.Context) error {
	_, err := c.categories.List(ctx, service.CategoryQuery{Page: "1", Limit: "100"})
	return err
}

func (c *Subcategories) CategoryFilter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categoryID
}

// FilterByCategory stages the filter without fetching.
func (c *Subcategories) FilterByCategory(categoryID string) {
	c.mu.Lock()
	c.categoryID = categoryID
	c.mu.Unlock()
}

func (c *Subcategories) SetCategoryFilter(ctx context.Context, categoryID string) error {
	c.mu.Lock()
	c.categoryID = categoryID
	c.mu.Unlock()
	return c.SetPage(ctx, 1)
}

func (c *Subcategories) Create(ctx context.Context, name, categoryID string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Create(ctx, service.CreateSubcategory{Name: name, CategoryID: categoryID}); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Subcategories) Update(ctx context.Context, id string, name, categoryID *string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Update(ctx, id, service.UpdateSubcategory{Name: name, CategoryID: categoryID}); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Subcategories) Delete(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Subcategories) Restore(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Restore(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Subcategories) View(ctx context.Context, id string) error {
	if !c.OpenModal(ModalView, id) {
		return ErrBusy
	}
	_, err := c.svc.GetByID(ctx, id)
	return err
}
