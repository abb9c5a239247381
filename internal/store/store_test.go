package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BodegonAdmin/internal/model"
)

func page(items ...model.Category) *model.Page[model.Category] {
	return &model.Page[model.Category]{
		Items:       items,
		Total:       len(items),
		TotalPages:  1,
		CurrentPage: 1,
	}
}

func TestStore_ListLifecycle(t *testing.T) {
	s := New[model.Category]()

	fence := s.BeginList()
	snap := s.Snapshot()
	assert.True(t, snap.Loading)
	assert.Empty(t, snap.Err)

	ok := s.ResolveList(fence, page(model.Category{ID: "c1", Name: "Postres"}))
	require.True(t, ok)

	snap = s.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.Data)
	assert.Equal(t, "Postres", snap.Data.Items[0].Name)
}

func TestStore_ListFailureStoresMessage(t *testing.T) {
	s := New[model.Category]()
	fence := s.BeginList()
	require.True(t, s.FailList(fence, "Error al cargar categorías"))

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "Error al cargar categorías", snap.Err)
}

func TestStore_StaleListResponseIsDropped(t *testing.T) {
	s := New[model.Category]()

	old := s.BeginList()
	newer := s.BeginList()

	// the newer request resolves first
	require.True(t, s.ResolveList(newer, page(model.Category{ID: "c2", Name: "Entradas"})))

	// the slow stale response must not commit, neither data nor failure
	assert.False(t, s.ResolveList(old, page(model.Category{ID: "c1", Name: "Viejo"})))
	assert.False(t, s.FailList(old, "late error"))

	snap := s.Snapshot()
	require.NotNil(t, snap.Data)
	assert.Equal(t, "c2", snap.Data.Items[0].ID)
	assert.Empty(t, snap.Err)
}

// Create never merges into the cached page; the caller re-fetches so the
// server-computed totals stay authoritative.
func TestStore_CreateDoesNotMerge(t *testing.T) {
	s := New[model.Category]()
	fence := s.BeginList()
	require.True(t, s.ResolveList(fence, page(model.Category{ID: "c1", Name: "Postres"})))

	s.BeginMutation()
	assert.True(t, s.Loading())
	s.CreateDone()

	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Len(t, snap.Data.Items, 1)
	assert.Equal(t, 1, snap.Data.Total)
}

func TestStore_UpdateReplacesInPlace(t *testing.T) {
	s := New[model.Category]()
	fence := s.BeginList()
	require.True(t, s.ResolveList(fence, page(
		model.Category{ID: "c1", Name: "Postres"},
		model.Category{ID: "c2", Name: "Entradas"},
	)))

	s.BeginMutation()
	s.UpdateDone(model.Category{ID: "c2", Name: "Principales"})

	snap := s.Snapshot()
	assert.Equal(t, "Principales", snap.Data.Items[1].Name)
	assert.Equal(t, 2, snap.Data.Total, "totals must not change on update")
}

func TestStore_DeleteStampsOptimistically(t *testing.T) {
	s := New[model.Category]()
	fence := s.BeginList()
	require.True(t, s.ResolveList(fence, page(model.Category{ID: "c1", Name: "Postres"})))

	now := time.Now()
	s.BeginMutation()
	s.DeleteDone("c1", func(c *model.Category) {
		c.IsDeleted = true
		c.DeletedAt = &now
	})

	snap := s.Snapshot()
	assert.True(t, snap.Data.Items[0].IsDeleted)
	require.NotNil(t, snap.Data.Items[0].DeletedAt)
	assert.Len(t, snap.Data.Items, 1, "soft delete never removes the record")
}

// Restore replaces with the server object: isDeleted cleared, restore stamps
// set, deletedAt/deletedBy retained.
func TestStore_RestoreKeepsDeleteHistory(t *testing.T) {
	s := New[model.Category]()
	deleted := time.Now().Add(-time.Hour)
	restored := time.Now()
	fence := s.BeginList()
	require.True(t, s.ResolveList(fence, page(model.Category{
		ID: "c1", Name: "Postres", IsDeleted: true, DeletedAt: &deleted,
	})))

	s.BeginMutation()
	s.RestoreDone(model.Category{
		ID: "c1", Name: "Postres",
		IsDeleted:  false,
		DeletedAt:  &deleted,
		RestoredAt: &restored,
	})

	got := s.Snapshot().Data.Items[0]
	assert.False(t, got.IsDeleted)
	require.NotNil(t, got.DeletedAt)
	assert.Equal(t, deleted.Unix(), got.DeletedAt.Unix())
	require.NotNil(t, got.RestoredAt)
}

func TestStore_SelectAndClear(t *testing.T) {
	s := New[model.Category]()
	s.BeginMutation()
	s.SelectDone(model.Category{ID: "c1", Name: "Postres"})

	snap := s.Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "c1", snap.Selected.ID)

	s.ClearSelected()
	s.ClearSelected() // idempotent
	assert.Nil(t, s.Snapshot().Selected)
}

func TestStore_ClearErrorIdempotent(t *testing.T) {
	s := New[model.Category]()
	s.BeginMutation()
	s.FailMutation("boom")
	assert.Equal(t, "boom", s.Snapshot().Err)

	s.ClearError()
	assert.Empty(t, s.Snapshot().Err)
	s.ClearError()
	assert.Empty(t, s.Snapshot().Err)
}

func TestStore_MutationOnEmptyStoreIsSafe(t *testing.T) {
	s := New[model.Category]()
	// no page fetched yet: transitions must not panic on nil data
	s.BeginMutation()
	s.UpdateDone(model.Category{ID: "x"})
	s.BeginMutation()
	s.DeleteDone("x", func(c *model.Category) { c.IsDeleted = true })
	assert.Nil(t, s.Snapshot().Data)
}
