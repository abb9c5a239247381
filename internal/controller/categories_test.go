package controller

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BodegonAdmin/internal/service"
)

func TestCategoriesSearchResetsPage(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		env.backend.SeedCategory(fmt.Sprintf("Categoría %d", i))
	}
	svc := service.NewCategoryService(env.client, env.toasts)
	ctrl := NewCategories(svc, 2)
	ctx := context.Background()

	require.NoError(t, ctrl.SetPage(ctx, 3))
	assert.Equal(t, 3, ctrl.Page())

	require.NoError(t, ctrl.SetSearch(ctx, "Categoría 1"))
	assert.Equal(t, 1, ctrl.Page())

	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Data)
	assert.Equal(t, 1, snap.Data.Total)
}

func TestCategoriesIncludeDeletedResetsPage(t *testing.T) {
	env := newTestEnv(t)
	env.backend.SeedCategory("Entradas")
	svc := service.NewCategoryService(env.client, env.toasts)
	ctrl := NewCategories(svc, 10)
	ctx := context.Background()

	require.NoError(t, ctrl.SetPage(ctx, 2))
	require.NoError(t, ctrl.SetIncludeDeleted(ctx, true))
	assert.Equal(t, 1, ctrl.Page())
	assert.True(t, ctrl.IncludeDeleted())
}

func TestCategoriesPagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		env.backend.SeedCategory(fmt.Sprintf("Categoría %d", i))
	}
	svc := service.NewCategoryService(env.client, env.toasts)
	ctrl := NewCategories(svc, 2)
	ctx := context.Background()

	require.NoError(t, ctrl.Refetch(ctx))
	require.NoError(t, ctrl.NextPage(ctx))
	assert.Equal(t, 2, ctrl.Page())

	require.NoError(t, ctrl.PrevPage(ctx))
	assert.Equal(t, 1, ctrl.Page())

	// already on the first page, nothing to do
	require.NoError(t, ctrl.PrevPage(ctx))
	assert.Equal(t, 1, ctrl.Page())
}

func TestCategoriesCreateClosesModalAndRefetches(t *testing.T) {
	env := newTestEnv(t)
	env.backend.SeedCategory("Entradas")
	svc := service.NewCategoryService(env.client, env.toasts)
	ctrl := NewCategories(svc, 10)
	ctx := context.Background()

	require.NoError(t, ctrl.Refetch(ctx))
	require.True(t, ctrl.OpenModal(ModalCreate, ""))
	assert.Equal(t, ModalCreate, ctrl.Modal())

	require.NoError(t, ctrl.Create(ctx, "Postres"))

	assert.Equal(t, ModalNone, ctrl.Modal())
	assert.Empty(t, ctrl.SelectedID())
	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Data)
	assert.Equal(t, 2, snap.Data.Total, "success must refetch the collection")
}

func TestCategoriesDeleteLifecycle(t *testing.T) {
	env := newTestEnv(t)
	cat := env.backend.SeedCategory("Entradas")
	svc := service.NewCategoryService(env.client, env.toasts)
	ctrl := NewCategories(svc, 10)
	ctx := context.Background()

	require.NoError(t, ctrl.Refetch(ctx))
	require.True(t, ctrl.OpenModal(ModalDelete, cat.ID))
	require.NoError(t, ctrl.Delete(ctx, cat.ID))

	assert.Equal(t, ModalNone, ctrl.Modal())
	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Data)
	assert.Empty(t, snap.Data.Items, "deleted record leaves the default listing")
}

func TestCategoriesViewSelectsRecord(t *testing.T) {
	env := newTestEnv(t)
	cat := env.backend.SeedCategory("Entradas")
	svc := service.NewCategoryService(env.client, env.toasts)
	ctrl := NewCategories(svc, 10)

	require.NoError(t, ctrl.View(context.Background(), cat.ID))
	assert.Equal(t, ModalView, ctrl.Modal())
	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, cat.ID, snap.Selected.ID)

	ctrl.CloseModal()
	assert.Nil(t, ctrl.Snapshot().Selected)
}
