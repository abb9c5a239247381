// Package fs is the file-backed credential store. One small file per value
// under the user's config directory, 0600, same layout the desktop clients of
// the restaurant suite use.
package fs

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	tokenFile    = "auth_token"
	usernameFile = "last_username"
	rememberFile = "remember_me"
)

type CredsFSStore struct {
	// Dir overrides the storage directory. Empty means
	// <user config dir>/BodegonAdmin.
	Dir string
}

func (s CredsFSStore) dir() (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o700); err != nil {
			return "", err
		}
		return s.Dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "BodegonAdmin")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s CredsFSStore) path(name string) (string, error) {
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func (s CredsFSStore) write(name, value string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

func (s CredsFSStore) read(name string) (string, error) {
	p, err := s.path(name)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	// trim trailing newlines/spaces left by manual edits
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", errors.New("empty " + name + " file")
	}
	return string(b), nil
}

func (s CredsFSStore) remove(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s CredsFSStore) SaveToken(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return s.write(tokenFile, token)
}

func (s CredsFSStore) LoadToken() (string, error) { return s.read(tokenFile) }

func (s CredsFSStore) ClearToken() error { return s.remove(tokenFile) }

func (s CredsFSStore) SaveUsername(username string) error {
	if username == "" {
		return errors.New("empty username")
	}
	return s.write(usernameFile, username)
}

func (s CredsFSStore) LoadUsername() (string, error) { return s.read(usernameFile) }

func (s CredsFSStore) ClearUsername() error { return s.remove(usernameFile) }

func (s CredsFSStore) SetRememberMe(on bool) error {
	if !on {
		return s.remove(rememberFile)
	}
	return s.write(rememberFile, "true")
}

func (s CredsFSStore) RememberMe() bool {
	v, err := s.read(rememberFile)
	return err == nil && v == "true"
}
