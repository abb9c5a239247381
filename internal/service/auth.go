package service

import (
	"context"

	"BodegonAdmin/internal/api"
	"BodegonAdmin/internal/notify"
	"BodegonAdmin/internal/repo"
)

type AuthService struct {
	api    *api.Client
	creds  repo.CredentialStore
	notify notify.Notifier
}

func NewAuthService(c *api.Client, creds repo.CredentialStore, n notify.Notifier) *AuthService {
	return &AuthService{api: c, creds: creds, notify: n}
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is what the backend returns on a successful login.
type LoginResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type loginResponse struct {
	Message string      `json:"message"`
	Result  LoginResult `json:"result"`
}

// Login authenticates and persists the bearer token. With remember set the
// username sticks around for the next session, otherwise it is wiped.
func (s *AuthService) Login(ctx context.Context, creds Credentials, remember bool) (*LoginResult, error) {
	if err := validate.Struct(creds); err != nil {
		s.notify.Error("Error: usuario y contraseña son obligatorios")
		return nil, err
	}
	var resp loginResponse
	if err := s.api.Post(ctx, "auth/login", creds, &resp); err != nil {
		s.notify.Error("Error: " + api.ErrorMessage(err))
		return nil, err
	}
	if err := s.creds.SaveToken(resp.Result.Token); err != nil {
		return nil, err
	}
	if remember {
		if err := s.creds.SaveUsername(creds.Username); err != nil {
			return nil, err
		}
		if err := s.creds.SetRememberMe(true); err != nil {
			return nil, err
		}
	} else {
		if err := s.creds.ClearUsername(); err != nil {
			return nil, err
		}
		if err := s.creds.SetRememberMe(false); err != nil {
			return nil, err
		}
	}
	s.notify.Success("Sesión iniciada como " + resp.Result.Username)
	return &resp.Result, nil
}

// Logout drops the token. The remembered username survives so the next login
// prompt can prefill it.
func (s *AuthService) Logout() error {
	if err := s.creds.ClearToken(); err != nil {
		return err
	}
	if !s.creds.RememberMe() {
		if err := s.creds.ClearUsername(); err != nil {
			return err
		}
	}
	s.notify.Success("Sesión cerrada")
	return nil
}

// RememberedUsername returns the stored username, or "" when remember-me is
// off or nothing was saved.
func (s *AuthService) RememberedUsername() string {
	if !s.creds.RememberMe() {
		return ""
	}
	name, err := s.creds.LoadUsername()
	if err != nil {
		return ""
	}
	return name
}
