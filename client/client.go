// Package client is the Go SDK for the residesk API. It reproduces the
// mobile app's behavior: local validation before any network call, bearer
// token injection, and no silent retries on gate validation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"residesk/internal/pkg/errs"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *SessionStore
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithSession(s *SessionStore) Option {
	return func(c *Client) { c.session = s }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		session:    NewSessionStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *SessionStore { return c.session }

// Login exchanges credentials for a token pair and stores it in the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp, false)
	if err != nil {
		return err
	}
	c.session.Set(resp.AccessToken, resp.RefreshToken)
	return nil
}

// RefreshSession trades the stored refresh token for a fresh pair.
func (c *Client) RefreshSession(ctx context.Context) error {
	refresh := c.session.RefreshToken()
	if refresh == "" {
		return ErrNotAuthenticated
	}

	var resp struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/refresh", map[string]string{
		"refreshToken": refresh,
	}, &resp, false)
	if err != nil {
		return err
	}
	c.session.Set(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (c *Client) Logout() {
	c.session.Clear()
}

// User is the wire shape of an account.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	ApartmentName string `json:"apartmentName"`
	FloorNumber   string `json:"floorNumber"`
	FlatNumber    string `json:"flatNumber"`
	Approved      bool   `json:"approved"`
}

// Me fetches the logged-in user's account, including the approval state a
// pending resident polls for.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// do runs one request. authed requests fail fast without a token instead of
// round-tripping to a guaranteed 401.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token := c.session.AccessToken()
		if token == "" {
			return ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Wrap(err, "failed to decode response")
		}
	}
	return nil
}

func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return "unreadable error body"
	}

	var payload struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != nil {
		switch v := payload.Error.(type) {
		case string:
			return v
		case map[string]any:
			if msg, ok := v["message"].(string); ok {
				return msg
			}
		}
	}
	return fmt.Sprintf("%.200s", string(raw))
}
