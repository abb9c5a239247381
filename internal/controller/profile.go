package controller

import (
	"context"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

// Profile is the "my account" page: the authenticated user's record and the
// self-service edit form.
type Profile struct {
	svc *service.UserService
}

func NewProfile(svc *service.UserService) *Profile {
	return &Profile{svc: svc}
}

func (c *Profile) Load(ctx context.Context) (*model.User, error) {
	return c.svc.FetchCurrentUser(ctx)
}

func (c *Profile) Current() *model.User {
	return c.svc.CurrentUser()
}

// Save pushes the edited fields. The service refetches the current-user slot
// when the edit targets the operator's own record.
func (c *Profile) Save(ctx context.Context, payload service.UpdateProfile) error {
	cur := c.svc.CurrentUser()
	if cur == nil {
		loaded, err := c.Load(ctx)
		if err != nil {
			return err
		}
		cur = loaded
	}
	_, err := c.svc.SaveProfile(ctx, cur.ID, payload)
	return err
}
