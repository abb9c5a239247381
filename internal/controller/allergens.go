package controller

import (
	"context"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

type Allergens struct {
	pageController[model.Allergen]
	svc   *service.AllergenService
	limit int
}

func NewAllergens(svc *service.AllergenService, limit int) *Allergens {
	c := &Allergens{svc: svc, limit: limit}
	c.pageController = newPageController(svc.Store(), c.load)
	return c
}

func (c *Allergens) load(ctx context.Context, page int, search string, includeDeleted bool) error {
	_, err := c.svc.List(ctx, service.AllergenQuery{
		Page:           itoa(page),
		Limit:          itoa(c.limit),
		Search:         search,
		IncludeDeleted: boolStr(includeDeleted),
	})
	return err
}

func (c *Allergens) Create(ctx context.Context, name string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Create(ctx, service.CreateAllergen{Name: name}); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Allergens) Rename(ctx context.Context, id, name string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Update(ctx, id, service.UpdateAllergen{Name: &name}); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Allergens) Delete(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Allergens) Restore(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Restore(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Allergens) View(ctx context.Context, id string) error {
	if !c.OpenModal(ModalView, id) {
		return ErrBusy
	}
	_, err := c.svc.GetByID(ctx, id)
	return err
}
