// Package api is the HTTP client for the chronicle content server. It keeps
// the session token and maps API statuses back onto the shared error set,
// so callers can tell a missing record from a transport failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/dalesbridge/chronicle/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the session token sent with subsequent requests.
// An empty token clears the session.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set(common.AccessTokenHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// apiError turns a non-2xx response into one of the shared sentinel errors,
// keeping the server's message as context.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Error == "" {
		body.Error = resp.Status
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusNotFound:
		sentinel = common.ErrNotFound
	case http.StatusUnauthorized:
		sentinel = common.ErrUnauthorized
	case http.StatusBadRequest:
		sentinel = common.ErrValidation
	case http.StatusConflict:
		sentinel = common.ErrAlreadyExists
	default:
		sentinel = common.ErrInternal
	}
	return fmt.Errorf("%w: %s", sentinel, body.Error)
}

// SignInWithPassword authenticates and installs the returned token on the
// client.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*User, error) {
	req := map[string]string{"email": email, "password": password}
	var resp struct {
		AccessToken string `json:"access_token"`
		User        User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return &resp.User, nil
}

func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdatePassword(ctx context.Context, newPassword string) error {
	req := map[string]string{"new_password": newPassword}
	return c.do(ctx, http.MethodPost, "/api/auth/password", req, nil)
}

func (c *Client) GetPage(ctx context.Context, slug string) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodGet, "/api/pages/"+slug, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UpdatePageContent(ctx context.Context, id string, content Content) error {
	req := map[string]Content{"content": content}
	return c.do(ctx, http.MethodPut, "/api/pages/"+id+"/content", req, nil)
}

func (c *Client) ListTownships(ctx context.Context) ([]Township, error) {
	var list []Township
	if err := c.do(ctx, http.MethodGet, "/api/townships", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetTownship(ctx context.Context, slug string) (*Township, error) {
	var township Township
	if err := c.do(ctx, http.MethodGet, "/api/townships/"+slug, nil, &township); err != nil {
		return nil, err
	}
	return &township, nil
}

func (c *Client) UpdateTownshipCards(ctx context.Context, id string, cards []TownshipCard) error {
	req := map[string][]TownshipCard{"cards": cards}
	return c.do(ctx, http.MethodPut, "/api/townships/"+id+"/cards", req, nil)
}

func (c *Client) SubmitContribution(ctx context.Context, contrib *Contribution) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/contributions", contrib, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) ListContributions(ctx context.Context) ([]Contribution, error) {
	var list []Contribution
	if err := c.do(ctx, http.MethodGet, "/api/admin/contributions", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) MarkContributionReviewed(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/contributions/"+id+"/reviewed", nil, nil)
}

func (c *Client) DeleteContribution(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/contributions/"+id, nil, nil)
}

func (c *Client) ListPages(ctx context.Context) ([]Page, error) {
	var list []Page
	if err := c.do(ctx, http.MethodGet, "/api/admin/pages", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var list []User
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// InviteUser creates an account and returns it with its one-time password.
func (c *Client) InviteUser(ctx context.Context, email string) (*User, string, error) {
	req := map[string]string{"email": email}
	var resp struct {
		User              User   `json:"user"`
		TemporaryPassword string `json:"temporary_password"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/users", req, &resp); err != nil {
		return nil, "", err
	}
	return &resp.User, resp.TemporaryPassword, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+id, nil, nil)
}
