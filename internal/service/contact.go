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

type ContactService struct {
	api    *api.Client
	store  *store.Store[model.Contact]
	notify notify.Notifier
}

func NewContactService(c *api.Client, n notify.Notifier) *ContactService {
	return &ContactService{api: c, store: store.New[model.Contact](), notify: n}
}

func (s *ContactService) Store() *store.Store[model.Contact] { return s.store }

type ContactQuery struct {
	Page           string
	Limit          string
	Search         string
	IsRead         string
	IncludeDeleted string
}

func (q ContactQuery) values() url.Values {
	v := url.Values{}
	setIf(v, "page", q.Page)
	// inbox defaults: small pages, deleted messages hidden unless asked for
	if q.Limit == "" {
		q.Limit = "10"
	}
	if q.IncludeDeleted == "" {
		q.IncludeDeleted = "false"
	}
	v.Set("limit", q.Limit)
	v.Set("includeDeleted", q.IncludeDeleted)
	setIf(v, "search", q.Search)
	setIf(v, "isRead", q.IsRead)
	return v
}

type contactListResponse struct {
	Message string `json:"message"`
	Result  struct {
		Contacts      []model.Contact `json:"contacts"`
		TotalContacts int             `json:"totalContacts"`
		TotalUnread   int             `json:"totalUnread"`
		TotalPages    int             `json:"totalPages"`
		CurrentPage   int             `json:"currentPage"`
		HasNextPage   bool            `json:"hasNextPage"`
		HasPrevPage   bool            `json:"hasPrevPage"`
	} `json:"result"`
}

type contactResponse struct {
	Message string        `json:"message"`
	Result  model.Contact `json:"result"`
}

func (s *ContactService) List(ctx context.Context, q ContactQuery) (*model.Page[model.Contact], error) {
	fence := s.store.BeginList()
	var resp contactListResponse
	if err := s.api.Get(ctx, "contacts", q.values(), &resp); err != nil {
		s.store.FailList(fence, api.ErrorMessage(err))
		return nil, err
	}
	page := &model.Page[model.Contact]{
		Items:       resp.Result.Contacts,
		Total:       resp.Result.TotalContacts,
		TotalUnread: resp.Result.TotalUnread,
		TotalPages:  resp.Result.TotalPages,
		CurrentPage: resp.Result.CurrentPage,
		HasNextPage: resp.Result.HasNextPage,
		HasPrevPage: resp.Result.HasPrevPage,
	}
	s.store.ResolveList(fence, page)
	return page, nil
}

// MarkAsRead flags a message as read. No toast on success, reading a message
// is not something worth announcing.
func (s *ContactService) MarkAsRead(ctx context.Context, id string) (*model.Contact, error) {
	s.store.BeginMutation()
	var resp contactResponse
	if err := s.api.Patch(ctx, "contacts/"+id+"/mark-as-read", nil, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.store.UpdateDone(resp.Result)
	return &resp.Result, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	s.store.BeginMutation()
	if err := s.api.Delete(ctx, "contacts/"+id, nil); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return err
	}
	now := time.Now()
	s.notify.Success("Mensaje eliminado")
	s.store.DeleteDone(id, func(c *model.Contact) {
		c.IsDeleted = true
		c.DeletedAt = &now
	})
	return nil
}

func (s *ContactService) Restore(ctx context.Context, id string) (*model.Contact, error) {
	s.store.BeginMutation()
	var resp contactResponse
	if err := s.api.Patch(ctx, "contacts/"+id+"/restore", nil, &resp); err != nil {
		msg := api.ErrorMessage(err)
		s.notify.Error("Error: " + msg)
		s.store.FailMutation(msg)
		return nil, err
	}
	s.notify.Success("Mensaje restaurado")
	s.store.RestoreDone(resp.Result)
	return &resp.Result, nil
}

func (s *ContactService) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	s.store.BeginMutation()
	var resp contactResponse
	if err := s.api.Get(ctx, "contacts/"+id, nil, &resp); err != nil {
		s.store.FailMutation(api.ErrorMessage(err))
		return nil, err
	}
	s.store.SelectDone(resp.Result)
	return &resp.Result, nil
}
