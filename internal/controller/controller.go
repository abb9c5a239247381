// Package controller holds the view-model layer. Each back-office page gets a
// controller owning its transient state: current page, search term, filters
// and which dialog is open. The data itself lives in the entity stores.
package controller

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"BodegonAdmin/internal/model"
	"BodegonAdmin/internal/store"
)

// ErrBusy is returned when a mutation is attempted while another request for
// the same page is still in flight.
var ErrBusy = errors.New("another request is in flight")

// Modal identifies the dialog a page currently shows.
type Modal int

const (
	ModalNone Modal = iota
	ModalCreate
	ModalEdit
	ModalDelete
	ModalRestore
	ModalView
)

// fetchFunc reloads the page's collection with the given list state.
type fetchFunc func(ctx context.Context, page int, search string, includeDeleted bool) error

// pageController is the state machine shared by every collection page.
// Concrete controllers embed it and add their entity-specific filters and
// mutations.
type pageController[T model.Entity] struct {
	store *store.Store[T]
	fetch fetchFunc

	mu             sync.Mutex
	page           int
	search         string
	includeDeleted bool
	modal          Modal
	selectedID     string
}

func newPageController[T model.Entity](st *store.Store[T], fetch fetchFunc) pageController[T] {
	return pageController[T]{store: st, fetch: fetch, page: 1}
}

func (c *pageController[T]) state() (page int, search string, includeDeleted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page, c.search, c.includeDeleted
}

// Refetch reloads the collection with the current list state.
func (c *pageController[T]) Refetch(ctx context.Context) error {
	page, search, includeDeleted := c.state()
	return c.fetch(ctx, page, search, includeDeleted)
}

func (c *pageController[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *pageController[T]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	return c.Refetch(ctx)
}

func (c *pageController[T]) NextPage(ctx context.Context) error {
	snap := c.store.Snapshot()
	if snap.Data == nil || !snap.Data.HasNextPage {
		return nil
	}
	return c.SetPage(ctx, c.Page()+1)
}

func (c *pageController[T]) PrevPage(ctx context.Context) error {
	snap := c.store.Snapshot()
	if snap.Data == nil || !snap.Data.HasPrevPage {
		return nil
	}
	return c.SetPage(ctx, c.Page()-1)
}

// SetSearch changes the search term. Any filter change drops the operator
// back to page one, the old offset is meaningless under a new filter.
func (c *pageController[T]) SetSearch(ctx context.Context, term string) error {
	c.mu.Lock()
	c.search = term
	c.page = 1
	c.mu.Unlock()
	return c.Refetch(ctx)
}

func (c *pageController[T]) SetIncludeDeleted(ctx context.Context, on bool) error {
	c.mu.Lock()
	c.includeDeleted = on
	c.page = 1
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// Configure replaces the list state wholesale without fetching. One-shot
// flows stage their filters with it and then call Refetch once.
func (c *pageController[T]) Configure(page int, search string, includeDeleted bool) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
	c.search = search
	c.includeDeleted = includeDeleted
}

func (c *pageController[T]) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

func (c *pageController[T]) IncludeDeleted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.includeDeleted
}

// OpenModal opens a dialog over the record with the given id (empty for
// create). Opening while a mutation is in flight is refused, that is the
// double-submit guard.
func (c *pageController[T]) OpenModal(m Modal, id string) bool {
	if c.store.Loading() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = m
	c.selectedID = id
	return true
}

func (c *pageController[T]) CloseModal() {
	c.mu.Lock()
	c.modal = ModalNone
	c.selectedID = ""
	c.mu.Unlock()
	c.store.ClearSelected()
	c.store.ClearError()
}

func (c *pageController[T]) Modal() Modal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}

func (c *pageController[T]) SelectedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID
}

// Busy reports whether a request is in flight; callers must not start another
// mutation while it holds.
func (c *pageController[T]) Busy() bool { return c.store.Loading() }

func (c *pageController[T]) Snapshot() store.Snapshot[T] { return c.store.Snapshot() }

// finishMutation is the shared success epilogue: dialog closed, selection
// cleared, collection refetched so server-computed fields come back fresh.
func (c *pageController[T]) finishMutation(ctx context.Context) error {
	c.CloseModal()
	return c.Refetch(ctx)
}

func itoa(n int) string { return strconv.Itoa(n) }

func boolStr(b bool) string { return strconv.FormatBool(b) }
