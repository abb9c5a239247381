// Package store keeps the last-fetched page of a server-owned collection plus
// a selected-record slot, a loading flag and an error slot. One store per
// entity kind; the services own the transitions.
//
// List requests are fenced: BeginList hands out a monotonic sequence number
// and only the newest number may commit a page or a failure, so a slow stale
// response can never overwrite a newer one.
package store

import (
	"sync"

	"BodegonAdmin/internal/model"
)

// Snapshot is a point-in-time copy of the store handed to the view layer.
// Items are copied so optimistic mutations cannot race a renderer.
type Snapshot[T model.Entity] struct {
	Data     *model.Page[T]
	Selected *T
	Loading  bool
	Err      string
}

type Store[T model.Entity] struct {
	mu       sync.Mutex
	seq      uint64
	data     *model.Page[T]
	selected *T
	loading  bool
	err      string
}

func New[T model.Entity]() *Store[T] { return &Store[T]{} }

// BeginList starts a list request: loading on, error cleared. The returned
// fence must be passed back to ResolveList/FailList.
func (s *Store[T]) BeginList() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
	s.seq++
	return s.seq
}

// ResolveList commits a fetched page. A stale fence is dropped and reported
// as false; it must not flip the loading flag either, since a newer request
// owns it.
func (s *Store[T]) ResolveList(fence uint64, page *model.Page[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fence != s.seq {
		return false
	}
	s.loading = false
	s.err = ""
	s.data = page
	return true
}

// FailList records a list failure, unless a newer request superseded it.
func (s *Store[T]) FailList(fence uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fence != s.seq {
		return false
	}
	s.loading = false
	s.err = msg
	return true
}

// BeginMutation marks a create/update/delete/restore/get-by-id in flight.
// Mutations are not fenced: the controllers chain them strictly.
func (s *Store[T]) BeginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

func (s *Store[T]) FailMutation(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = msg
}

// CreateDone clears the in-flight state without merging the created record
// into the cached page. Server-computed pagination totals would be stale
// otherwise; the caller re-fetches instead.
func (s *Store[T]) CreateDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = ""
}

// UpdateDone replaces the matching record in the cached page, leaving the
// pagination totals untouched.
func (s *Store[T]) UpdateDone(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = ""
	if i := s.data.Index(rec.EntityID()); i >= 0 {
		s.data.Items[i] = rec
	}
}

// DeleteDone applies the caller's optimistic soft-delete stamp to the cached
// record. The authoritative timestamp and actor come from the next re-fetch.
func (s *Store[T]) DeleteDone(id string, stamp func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = ""
	if i := s.data.Index(id); i >= 0 {
		stamp(&s.data.Items[i])
	}
}

// RestoreDone replaces the cached record wholesale with the server's restored
// object.
func (s *Store[T]) RestoreDone(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = ""
	if i := s.data.Index(rec.EntityID()); i >= 0 {
		s.data.Items[i] = rec
	}
}

// SelectDone fills the selected-record slot (get-by-id success).
func (s *Store[T]) SelectDone(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = ""
	s.selected = &rec
}

// ClearError and ClearSelected are idempotent resets, callable at any time.
func (s *Store[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *Store[T]) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot[T]{Loading: s.loading, Err: s.err}
	if s.data != nil {
		page := *s.data
		page.Items = make([]T, len(s.data.Items))
		copy(page.Items, s.data.Items)
		snap.Data = &page
	}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	return snap
}
