package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BodegonAdmin/internal/testapi"
)

func TestUserFetchCurrent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.client, env.toasts)

	assert.Nil(t, svc.CurrentUser())

	cur, err := svc.FetchCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testapi.Username, cur.Username)
	require.NotNil(t, svc.CurrentUser())
	assert.Equal(t, cur.ID, svc.CurrentUser().ID)
}

func TestUserSaveProfileRefetchesOwnRecord(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.client, env.toasts)

	cur, err := svc.FetchCurrentUser(context.Background())
	require.NoError(t, err)

	newName := "anita"
	_, err = svc.SaveProfile(context.Background(), cur.ID, UpdateProfile{Username: &newName})
	require.NoError(t, err)

	require.NotNil(t, svc.CurrentUser())
	assert.Equal(t, "anita", svc.CurrentUser().Username)
	assert.Equal(t, "Perfil actualizado", env.toasts.Last())
}

func TestUserSaveProfileOtherUserLeavesCurrentAlone(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.client, env.toasts)

	cur, err := svc.FetchCurrentUser(context.Background())
	require.NoError(t, err)

	other, err := svc.Create(context.Background(), CreateUser{
		Username:  "mozo1",
		Password:  "secret123",
		FirstName: "Juan",
		LastName:  "Pérez",
		Role:      "admin",
	})
	require.NoError(t, err)

	newName := "mozo-renombrado"
	_, err = svc.SaveProfile(context.Background(), other.ID, UpdateProfile{Username: &newName})
	require.NoError(t, err)

	assert.Equal(t, cur.Username, svc.CurrentUser().Username)
}

func TestUserProfileEndpointIgnoresRole(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.client, env.toasts)

	other, err := svc.Create(context.Background(), CreateUser{
		Username:  "mozo1",
		Password:  "secret123",
		FirstName: "Juan",
		LastName:  "Pérez",
		Role:      "admin",
	})
	require.NoError(t, err)

	role := "guest"
	updated, err := svc.Update(context.Background(), other.ID, UpdateUser{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "guest", string(updated.Role))
}

func TestUserListExcludesDeleted(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.client, env.toasts)

	other, err := svc.Create(context.Background(), CreateUser{
		Username:  "mozo1",
		Password:  "secret123",
		FirstName: "Juan",
		LastName:  "Pérez",
		Role:      "admin",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), other.ID))

	page, err := svc.List(context.Background(), UserQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	page, err = svc.List(context.Background(), UserQuery{IncludeDeleted: "true"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestUserCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.client, env.toasts)

	_, err := svc.Create(context.Background(), CreateUser{Username: "solo"})
	require.Error(t, err)
	assert.NotEmpty(t, env.toasts.Errors)
}
