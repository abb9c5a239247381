package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BodegonAdmin/internal/testapi"
)

func TestAuthLoginRememberMe(t *testing.T) {
	env := newLoggedOutEnv(t)
	svc := NewAuthService(env.client, env.creds, env.toasts)

	res, err := svc.Login(context.Background(), Credentials{
		Username: testapi.Username,
		Password: testapi.Password,
	}, true)
	require.NoError(t, err)
	assert.Equal(t, testapi.Username, res.Username)

	token, err := env.creds.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, testapi.Token, token)

	assert.True(t, env.creds.RememberMe())
	assert.Equal(t, testapi.Username, svc.RememberedUsername())
}

func TestAuthLoginWithoutRememberWipesUsername(t *testing.T) {
	env := newLoggedOutEnv(t)
	require.NoError(t, env.creds.SaveUsername("stale"))
	require.NoError(t, env.creds.SetRememberMe(true))

	svc := NewAuthService(env.client, env.creds, env.toasts)
	_, err := svc.Login(context.Background(), Credentials{
		Username: testapi.Username,
		Password: testapi.Password,
	}, false)
	require.NoError(t, err)

	assert.False(t, env.creds.RememberMe())
	assert.Empty(t, svc.RememberedUsername())
	_, err = env.creds.LoadUsername()
	assert.Error(t, err)
}

func TestAuthLoginBadCredentials(t *testing.T) {
	env := newLoggedOutEnv(t)
	svc := NewAuthService(env.client, env.creds, env.toasts)

	_, err := svc.Login(context.Background(), Credentials{
		Username: testapi.Username,
		Password: "wrong",
	}, false)
	require.Error(t, err)

	_, err = env.creds.LoadToken()
	assert.Error(t, err, "failed login must not leave a token behind")
	require.NotEmpty(t, env.toasts.Errors)
	assert.Contains(t, env.toasts.Errors[0], "Credenciales inválidas")
}

func TestAuthLoginValidatesInput(t *testing.T) {
	env := newLoggedOutEnv(t)
	svc := NewAuthService(env.client, env.creds, env.toasts)

	_, err := svc.Login(context.Background(), Credentials{Username: "only"}, false)
	require.Error(t, err)
	assert.NotEmpty(t, env.toasts.Errors)
}

func TestAuthLogoutKeepsRememberedUsername(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.creds.SaveUsername(testapi.Username))
	require.NoError(t, env.creds.SetRememberMe(true))

	svc := NewAuthService(env.client, env.creds, env.toasts)
	require.NoError(t, svc.Logout())

	_, err := env.creds.LoadToken()
	assert.Error(t, err)
	assert.Equal(t, testapi.Username, svc.RememberedUsername())
}

func TestAuthLogoutWithoutRememberClearsUsername(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.creds.SaveUsername(testapi.Username))

	svc := NewAuthService(env.client, env.creds, env.toasts)
	require.NoError(t, svc.Logout())

	_, err := env.creds.LoadUsername()
	assert.Error(t, err)
}
