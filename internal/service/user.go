package service

import (
	"context"
	"net/url"
	"sync"
	"time"

	"BodegonAdmin/internal/api"
	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/notify"
	"BodegonAdmin/internal/store"
)

// UserService manages the user collection plus a separate slot for the
// authenticated user's own record, which survives list refetches.
type UserService struct {
	api    *api.Client
	store  *store.Store[model.User]
	notify notify.Notifier

	mu      sync.RWMutex
	current *model.User
}

func NewUserService(c *api.Client, n notify.Notifier) *UserService {
	return &UserService{api: c, store: store.New[model.User](), notify: n}
}

func (s *UserService) Store() *store.Store[model.User] { return s.store }

func (s *UserService) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *UserService) setCurrent(u *model.User) {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
}

type UserQuery struct {
	Page           string
	Limit          string
	Search         string
	IncludeDeleted string
}

func (q UserQuery) values() url.Values {
	v := url.Values{}
	setIf(v, "page", q.Page)
	setIf(v, "limit", q.Limit)
	setIf(v, "search", q.Search)
	setIf(v, "includeDeleted", q.IncludeDeleted)
	return v
}

type CreateUser struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role" validate:"required"`
}

type UpdateUser struct {
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *string `json:"role,omitempty"`
}

// UpdateProfile is the self-service variant: any user may change their own
// identity fields and password, but not their role.
type UpdateProfile struct {
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

type userListResponse struct {
	Message string `json:"message"`
	Result  struct {
		Users       []model.User `json:"users"`
		TotalUsers  int          `json:"totalUsers"`
		TotalPages  int          `json:"totalPages"`
		CurrentPage int          `json:"currentPage"`
		HasNextPage bool         `json:"hasNextPage"`
		HasPrevPage bool         `json:"hasPrevPage"`
	} `json:"result"`
}

type userResponse struct {
	Message string     `json:"message"`
	Result  model.User `json:"result"`
}

func (s *UserService) List(ctx context.Context, q UserQuery) (*model.Page[model.User], error) {
	fence := s.store.BeginList()
	var resp userListResponse
	if err := s.api.Get(ctx, "users", q.values(), &resp); err != nil {
		s.store.FailList(fence, api.ErrorMessage(err))
		return nil, err
	}
	page := &model.Page[model.User]{
		Items:       resp.Result.Users,
		Total:       resp.Result.TotalUsers,
		TotalPages:  resp.Result.TotalPages,
		CurrentPage: resp.Result.CurrentPage,
		HasNextPage: resp.Result.HasNextPage,
		HasPrevPage: resp.Result.HasPrevPage,
	}
	s.store.ResolveList(fence, page)
	return page, nil
}

func (s *UserService) Create(ctx context.Context, payload CreateUser) (*model.User, error) {
	s.store.BeginMutation()
	if err := validate.Struct(payload); err != nil {
		s.notify.Error("Error: datos de usuario incompletos")
		s.store.FailMutation("Datos de usuario incompletos")
		return nil, err
	}
	var resp userResponse
	if err := s.api.Post(ctx, "users", payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Usuario creado")
	s.store.CreateDone()
	return &resp.Result, nil
}

func (s *UserService) Update(ctx context.Context, id string, payload UpdateUser) (*model.User, error) {
	s.store.BeginMutation()
	var resp userResponse
	if err := s.api.Put(ctx, "users/"+id, payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Usuario actualizado")
	s.store.UpdateDone(resp.Result)
	return &resp.Result, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	s.store.BeginMutation()
	if err := s.api.Delete(ctx, "users/"+id, nil); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return err
	}
	now := time.Now()
	s.notify.Success("Usuario eliminado")
	s.store.DeleteDone(id, func(u *model.User) {
		u.IsDeleted = true
		u.DeletedAt = &now
	})
	return nil
}

func (s *UserService) Restore(ctx context.Context, id string) (*model.User, error) {
	s.store.BeginMutation()
	var resp userResponse
	if err := s.api.Patch(ctx, "users/"+id+"/restore", nil, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Usuario restaurado")
	s.store.RestoreDone(resp.Result)
	return &resp.Result, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	s.store.BeginMutation()
	var resp userResponse
	if err := s.api.Get(ctx, "users/"+id, nil, &resp); err != nil {
		s.store.FailMutation(api.ErrorMessage(err))
		return nil, err
	}
	s.store.SelectDone(resp.Result)
	return &resp.Result, nil
}

// FetchCurrentUser loads the record behind the active token into the
// current-user slot.
func (s *UserService) FetchCurrentUser(ctx context.Context) (*model.User, error) {
	var resp userResponse
	if err := s.api.Get(ctx, "users/current", nil, &resp); err != nil {
		return nil, err
	}
	s.setCurrent(&resp.Result)
	return &resp.Result, nil
}

// SaveProfile updates a user through the profile endpoint. When the target is
// the authenticated user the current-user slot is refetched so a renamed
// account shows its new identity immediately.
func (s *UserService) SaveProfile(ctx context.Context, id string, payload UpdateProfile) (*model.User, error) {
	s.store.BeginMutation()
	var resp userResponse
	if err := s.api.Put(ctx, "users/profile/"+id, payload, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Perfil actualizado")
	s.store.UpdateDone(resp.Result)

	if cur := s.CurrentUser(); cur != nil && cur.ID == id {
		if _, err := s.FetchCurrentUser(ctx); err != nil {
			// profile change went through, only the refresh failed
			s.setCurrent(&resp.Result)
		}
	}
	return &resp.Result, nil
}
