package commands

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"BodegonAdmin/internal/config"
	"BodegonAdmin/internal/repo/fs"
	"BodegonAdmin/internal/testapi"
)

// newTestApp wires a full App against the in-memory backend. Credentials land
// in a temp dir so tests never touch the real config directory.
func newTestApp(t *testing.T) (*App, *testapi.Server) {
	t.Helper()
	backend := testapi.New()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		APIURL:    srv.URL + "/api/",
		CredsDir:  t.TempDir(),
		PageLimit: 10,
	}
	return NewApp(cfg, zap.NewNop().Sugar()), backend
}

func loggedIn(t *testing.T, app *App) {
	t.Helper()
	store := app.Creds.(fs.CredsFSStore)
	require.NoError(t, store.SaveToken(testapi.Token))
}

// capture swaps the shared Out writer for the duration of fn.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
