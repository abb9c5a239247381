package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BodegonAdmin/internal/repo"
)

var _ repo.CredentialStore = CredsFSStore{}

// setTempCfg points the user config dir at a temp directory.
func setTempCfg(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestCredsFSStore_TokenRoundTrip(t *testing.T) {
	setTempCfg(t)
	s := CredsFSStore{}

	_, err := s.LoadToken()
	require.Error(t, err, "no token stored yet")

	require.NoError(t, s.SaveToken("tok-abc"))
	tok, err := s.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok)

	require.NoError(t, s.ClearToken())
	_, err = s.LoadToken()
	assert.Error(t, err)

	// clearing again is a no-op
	require.NoError(t, s.ClearToken())
}

func TestCredsFSStore_RejectsEmptyValues(t *testing.T) {
	setTempCfg(t)
	s := CredsFSStore{}
	assert.Error(t, s.SaveToken(""))
	assert.Error(t, s.SaveUsername(""))
}

func TestCredsFSStore_TrimsTrailingWhitespace(t *testing.T) {
	dir := setTempCfg(t)
	s := CredsFSStore{}
	require.NoError(t, s.SaveToken("x"))
	p := filepath.Join(dir, "BodegonAdmin", "auth_token")
	require.NoError(t, os.WriteFile(p, []byte("tok-manual\n\t "), 0o600))

	tok, err := s.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok-manual", tok)
}

func TestCredsFSStore_RememberMe(t *testing.T) {
	setTempCfg(t)
	s := CredsFSStore{}

	assert.False(t, s.RememberMe())
	require.NoError(t, s.SetRememberMe(true))
	assert.True(t, s.RememberMe())

	require.NoError(t, s.SaveUsername("admin"))
	u, err := s.LoadUsername()
	require.NoError(t, err)
	assert.Equal(t, "admin", u)

	require.NoError(t, s.SetRememberMe(false))
	assert.False(t, s.RememberMe())
}

func TestCredsFSStore_ExplicitDir(t *testing.T) {
	dir := t.TempDir()
	s := CredsFSStore{Dir: filepath.Join(dir, "nested")}
	require.NoError(t, s.SaveToken("tok"))
	tok, err := s.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}
