package controller

import (
	"context"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

type Ingredients struct {
	pageController[model.Ingredient]
	svc   *service.IngredientService
	limit int
}

func NewIngredients(svc *service.IngredientService, limit int) *Ingredients {
	c := &Ingredients{svc: svc, limit: limit}
	c.pageController = newPageController(svc.Store(), c.load)
	return c
}

func (c *Ingredients) load(ctx context.Context, page int, search string, includeDeleted bool) error {
	_, err := c.svc.List(ctx, service.IngredientQuery{
		Page:           itoa(page),
		Limit:          itoa(c.limit),
		Search:         search,
		IncludeDeleted: boolStr(includeDeleted),
	})
	return err
}

func (c *Ingredients) Create(ctx context.Context, name string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Create(ctx, service.CreateIngredient{Name: name}); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Ingredients) Rename(ctx context.Context, id, name string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Update(ctx, id, service.UpdateIngredient{Name: &name}); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Ingredients) Delete(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Ingredients) Restore(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Restore(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Ingredients) View(ctx context.Context, id string) error {
	if !c.OpenModal(ModalView, id) {
		return ErrBusy
	}
	_, err := c.svc.GetByID(ctx, id)
	return err
}
