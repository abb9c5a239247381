package controller

import (
	"context"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

// Categories drives the category admin page. Subcategories are requested
// inline so the table can show them nested.
type Categories struct {
	pageController[model.Category]
	svc   *service.CategoryService
	limit int
}

func NewCategories(svc *service.CategoryService, limit int) *Categories {
	c := &Categories{svc: svc, limit: limit}
	c.pageController = newPageController(svc.Store(), c.load)
	return c
}

func (c *Categories) load(ctx context.Context, page int, search string, includeDeleted bool) error {
	_, err := c.svc.List(ctx, service.CategoryQuery{
		Page:                 itoa(page),
		Limit:                itoa(c.limit),
		Search:               search,
		IncludeDeleted:       boolStr(includeDeleted),
		IncludeSubcategories: "true",
	})
	return err
}

func (c *Categories) Create(ctx context.Context, name string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Create(ctx, service.CreateCategory{Name: name}); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Categories) Rename(ctx context.Context, id, name string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Update(ctx, id, service.UpdateCategory{Name: &name}); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Categories) Delete(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Categories) Restore(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Restore(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

// View loads a single record into the selected slot and opens the detail
// dialog.
func (c *Categories) View(ctx context.Context, id string) error {
	if !c.OpenModal(ModalView, id) {
		return ErrBusy
	}
	_, err := c.svc.GetByID(ctx, id)
	return err
}
