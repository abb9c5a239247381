package controller

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
	toasts  *notify.Recorder
}

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
		toasts:  &notify.Recorder{},
	}
}
