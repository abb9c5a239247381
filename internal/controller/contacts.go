package controller

import (
	"context"
	"sync"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/service"
)

// Contacts is the inbox page. Its extra filter is read state, and viewing an
// unread message marks it read on the server.
type Contacts struct {
	pageController[model.Contact]
	svc   *service.ContactService
	limit int

	mu         sync.Mutex
	readFilter string // "", "true" or "false"
}

func NewContacts(svc *service.ContactService, limit int) *Contacts {
	c := &Contacts{svc: svc, limit: limit}
	c.pageController = newPageController(svc.Store(), c.load)
	return c
}

func (c *Contacts) load(ctx context.Context, page int, search string, includeDeleted bool) error {
	_, err := c.svc.List(ctx, service.ContactQuery{
		Page:           itoa(page),
		Limit:          itoa(c.limit),
		Search:         search,
		IsRead:         c.ReadFilter(),
		IncludeDeleted: boolStr(includeDeleted),
	})
	return err
}

func (c *Contacts) ReadFilter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readFilter
}

// FilterByRead stages the filter without fetching.
func (c *Contacts) FilterByRead(filter string) {
	c.mu.Lock()
	c.readFilter = filter
	c.mu.Unlock()
}

func (c *Contacts) SetReadFilter(ctx context.Context, filter string) error {
	c.mu.Lock()
	c.readFilter = filter
	c.mu.Unlock()
	return c.SetPage(ctx, 1)
}

// View opens a message. An unread one is marked read first and the list is
// refetched afterwards so the unread badge updates.
func (c *Contacts) View(ctx context.Context, id string) error {
	if !c.OpenModal(ModalView, id) {
		return ErrBusy
	}
	msg, err := c.svc.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg.IsRead {
		return nil
	}
	if _, err := c.svc.MarkAsRead(ctx, id); err != nil {
		return err
	}
	return c.Refetch(ctx)
}

func (c *Contacts) Delete(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

func (c *Contacts) Restore(ctx context.Context, id string) error {
	if c.Busy() {
		return ErrBusy
	}
	if _, err := c.svc.Restore(ctx, id); err != nil {
		return err
	}
	return c.finishMutation(ctx)
}

// Unread reports the server-side unread total from the last fetch.
func (c *Contacts) Unread() int {
	snap := c.Snapshot()
	if snap.Data == nil {
		return 0
	}
	return snap.Data.TotalUnread
}
