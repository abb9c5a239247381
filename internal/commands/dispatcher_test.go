package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchNoArgsShowsUsage(t *testing.T) {
	app, _ := newTestApp(t)
	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, nil)
	})
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Commands:")
}

func TestDispatchUnknownCommand(t *testing.T) {
	app, _ := newTestApp(t)
	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"frobnicate"})
	})
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestDispatchHelpForCommand(t *testing.T) {
	app, _ := newTestApp(t)
	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"help", "login"})
	})
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "login [-remember]")
}

func TestDispatchUsageError(t *testing.T) {
	app, _ := newTestApp(t)
	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"show", "categories"})
	})
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Usage: show")
}

func TestDispatchReportsExpiredSession(t *testing.T) {
	app, backend := newTestApp(t)
	loggedIn(t, app)
	backend.ExpireSessions = true

	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"list", "categories"})
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "La sesión ha expirado")

	// the adapter already dropped the dead token
	_, err := app.Creds.LoadToken()
	assert.Error(t, err)
	assert.True(t, app.Session.Expired())
}

func TestDispatchPageScopedErrorKeepsSession(t *testing.T) {
	app, _ := newTestApp(t)
	loggedIn(t, app)

	var code int
	out := capture(t, func() {
		code = Dispatch(context.Background(), app, []string{"delete", "category", "missing-id"})
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "error")
	assert.False(t, app.Session.Expired())

	token, err := app.Creds.LoadToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestGlobalUsageListsAllCommands(t *testing.T) {
	usage := FormatGlobalUsage()
	for _, name := range []string{"login", "logout", "status", "dashboard", "list", "show", "add", "edit", "delete", "restore", "read", "profile"} {
		assert.True(t, strings.Contains(usage, name), "usage must mention %q", name)
	}
}
