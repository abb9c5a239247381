package service

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"BodegonAdmin/internal/api"
	"BodegonAdmin/internal/notify"
	"BodegonAdmin/internal/repo/fs"
	"BodegonAdmin/internal/testapi"
)

type testEnv struct {
	backend *testapi.Server
	client  *api.Client
	creds   fs.CredsFSStore
	toasts  *notify.Recorder
}

// newTestEnv brings up the in-memory backend with a valid session already
// stored, which is the state every page except login starts from.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	backend := testapi.New()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	creds := fs.CredsFSStore{Dir: t.TempDir()}
	require.NoError(t, creds.SaveToken(testapi.Token))

	return &testEnv{
		backend: backend,
		client:  api.New(srv.URL+"/api/", creds),
		creds:   creds,
		toasts:  &notify.Recorder{},
	}
}

// newLoggedOutEnv is the login-page state: no stored credentials at all.
func newLoggedOutEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	require.NoError(t, env.creds.ClearToken())
	return env
}
