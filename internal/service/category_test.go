package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryListAndSearch(t *testing.T) {
	env := newTestEnv(t)
	env.backend.SeedCategory("Entradas")
	env.backend.SeedCategory("Principales")
	env.backend.SeedCategory("Postres")

	svc := NewCategoryService(env.client, env.toasts)

	page, err := svc.List(context.Background(), CategoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Items, 3)

	page, err = svc.List(context.Background(), CategoryQuery{Search: "post"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Postres", page.Items[0].Name)

	snap := svc.Store().Snapshot()
	require.NotNil(t, snap.Data)
	assert.Equal(t, 1, snap.Data.Total)
	assert.False(t, snap.Loading)
}

func TestCategoryCreateDoesNotTouchLoadedPage(t *testing.T) {
	env := newTestEnv(t)
	env.backend.SeedCategory("Entradas")
	svc := NewCategoryService(env.client, env.toasts)

	_, err := svc.List(context.Background(), CategoryQuery{})
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), CreateCategory{Name: "Postres"})
	require.NoError(t, err)
	assert.Equal(t, "Postres", created.Name)
	assert.Equal(t, "Categoría creada", env.toasts.Last())

	// the loaded page stays as-is until the caller refetches
	snap := svc.Store().Snapshot()
	assert.Equal(t, 1, snap.Data.Total)
	assert.Len(t, snap.Data.Items, 1)

	page, err := svc.List(context.Background(), CategoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestCategoryCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCategoryService(env.client, env.toasts)

	_, err := svc.Create(context.Background(), CreateCategory{})
	require.Error(t, err)
	assert.NotEmpty(t, env.toasts.Errors)
	assert.Equal(t, "El nombre es obligatorio", svc.Store().Snapshot().Err)
}

func TestCategoryDeleteStampsLocalRecord(t *testing.T) {
	env := newTestEnv(t)
	cat := env.backend.SeedCategory("Entradas")
	svc := NewCategoryService(env.client, env.toasts)

	_, err := svc.List(context.Background(), CategoryQuery{})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), cat.ID))

	snap := svc.Store().Snapshot()
	require.Len(t, snap.Data.Items, 1)
	assert.True(t, snap.Data.Items[0].IsDeleted)
	assert.NotNil(t, snap.Data.Items[0].DeletedAt)
}

func TestCategoryRestoreKeepsServerRecord(t *testing.T) {
	env := newTestEnv(t)
	cat := env.backend.SeedCategory("Entradas")
	svc := NewCategoryService(env.client, env.toasts)

	require.NoError(t, svc.Delete(context.Background(), cat.ID))
	restored, err := svc.Restore(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.NotNil(t, restored.RestoredAt)
	assert.Equal(t, "Categoría restaurada", env.toasts.Last())
}

func TestCategoryServerErrorSurfacesMessage(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCategoryService(env.client, env.toasts)

	err := svc.Delete(context.Background(), "missing-id")
	require.Error(t, err)
	require.NotEmpty(t, env.toasts.Errors)
	assert.Contains(t, env.toasts.Errors[0], "no encontrado")
	assert.Contains(t, svc.Store().Snapshot().Err, "no encontrado")
}

func TestCategoryGetByIDSelects(t *testing.T) {
	env := newTestEnv(t)
	cat := env.backend.SeedCategory("Entradas")
	svc := NewCategoryService(env.client, env.toasts)

	got, err := svc.GetByID(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Equal(t, cat.ID, got.ID)

	snap := svc.Store().Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, cat.ID, snap.Selected.ID)
}
