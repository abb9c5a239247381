package controller

import (
	"context"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

type Users struct {
	pageController[model.User]
	svc   *service.UserService
	limit int
}

func NewUsers(svc *service.UserService, limit int) *Users {
	c := &Users{svc: svc, limit: limit}
	c.pageController = newPageController(svc.Store(), c.load)
	return c
}

func (c *Users) load(ctx context.Context, page int, search string, includeDeleted bool) error {
	_, err := c.svc.List(ctx, service.UserQuery{
		Page:           itoa(page),
		Limit:          itoa(c.limit),
		Search:         search,
		IncludeDeleted: boolStr(includeDeleted),
	})
	return err
}

func (c *Users) Create(ctx context.Context, payload service.CreateUser) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Create(ctx, payload); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Users) Update(ctx context.Context, id string, payload service.UpdateUser) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Update(ctx, id, payload); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Users) Delete(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Users) Restore(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Restore(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Users) View(ctx context.Context, id string) error {
	if !c.OpenModal(ModalView, id) {
		return ErrBusy
	}
	_, err := c.svc.GetByID(ctx, id)
	return err
}
