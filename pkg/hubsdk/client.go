package hubsdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the community hub service. It covers the anonymous
// operations and creates authenticated Sessions via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a hub client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account. The caller still has to log in
// afterwards; registration does not issue a token.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AccountResponse, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/api/users/register", body)
	if err != nil {
		return nil, err
	}

	var account AccountResponse
	if err := decodeJSON(resp, &account, http.StatusCreated); err != nil {
		return nil, err
	}
	return &account, nil
}

// Login exchanges credentials for an authenticated Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	resp, err := c.doJSON(ctx, http.MethodPost, "/api/users/login", body)
	if err != nil {
		return nil, err
	}

	var login LoginResponse
	if err := decodeJSON(resp, &login, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, &login), nil
}

// ListProposals fetches every proposal, newest first. No authentication
// is required.
func (c *Client) ListProposals(ctx context.Context) ([]ProposalResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/proposals", nil)
	if err != nil {
		return nil, err
	}

	var proposals []ProposalResponse
	if err := decodeJSON(resp, &proposals, http.StatusOK); err != nil {
		return nil, err
	}
	return proposals, nil
}

// Health hits the root health endpoint and returns its plain-text body.
func (c *Client) Health(ctx context.Context) (string, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", parseErrorResponse(resp.StatusCode, body)
	}
	return string(body), nil
}
