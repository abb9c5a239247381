// Package api is the HTTP adapter for the restaurant backend. It attaches the
// bearer token read fresh from the credential store on every request and
// escalates invalid-session failures to the process-wide expiry hook.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"BodegonAdmin/internal/repo"
)

type Client struct {
	base  string
	http  *http.Client
	creds repo.CredentialStore
	log   *zap.SugaredLogger

	// onExpire and onLoginView are wired at bootstrap; the adapter is the
	// only writer of the session-expired state.
	onExpire    func()
	onLoginView func() bool
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithExpiryHook registers the callback fired when an invalid-session
// response is detected.
func WithExpiryHook(fn func()) Option {
	return func(c *Client) { c.onExpire = fn }
}

// WithLoginViewCheck registers the predicate telling whether the login view
// is currently active; expiry is suppressed there.
func WithLoginViewCheck(fn func() bool) Option {
	return func(c *Client) { c.onLoginView = fn }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) { c.log = l }
}

func New(base string, creds repo.CredentialStore, opts ...Option) *Client {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	c := &Client{
		base:        base,
		http:        http.DefaultClient,
		creds:       creds,
		log:         zap.NewNop().Sugar(),
		onExpire:    func() {},
		onLoginView: func() bool { return false },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, out)
}

// PostForm and PutForm send a multipart payload (dish create/update carries
// an optional image plus JSON-stringified id arrays).
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, contentType, body, out)
}

func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, contentType, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, nil, "application/json", reader, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	endpoint := c.base + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// token is read fresh per request, never cached at construction time
	if token, err := c.creds.LoadToken(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		apiErr := newError(resp.StatusCode, raw)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			c.checkSession(apiErr)
		}
		c.log.Debugw("server error", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// checkSession decides whether a 401/403 means the session itself is dead.
// The classification is message-text based (see IsInvalidSessionMessage); a
// missing stored token also counts. Page-scoped authorization failures pass
// through untouched.
func (c *Client) checkSession(apiErr *Error) {
	token, err := c.creds.LoadToken()
	hasToken := err == nil && token != ""

	shouldLogout := IsInvalidSessionMessage(apiErr.ErrText) || !hasToken
	if !shouldLogout || c.onLoginView() {
		return
	}
	_ = c.creds.ClearToken()
	c.onExpire()
}
