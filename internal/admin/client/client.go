package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gavinjunior/portfolio-backend/internal/projects/domain"
)

// Client handles communication with the portfolio API server
type Client struct {
	// Base URL of the API server, without the /api suffix
	BaseURL string

	client *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// HTTPClient exposes the underlying client for downloads against the same host.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type createResponse struct {
	Message   string `json:"message"`
	ProjectID string `json:"projectId"`
}

// Login exchanges the admin password for the bearer token.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", "", map[string]string{"password": password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("no token found in server response")
	}
	return resp.Token, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var items []domain.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateProject(ctx context.Context, token string, in domain.CreateInput) (string, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/api/projects", token, in, &resp); err != nil {
		return "", err
	}
	return resp.ProjectID, nil
}

func (c *Client) UpdateProject(ctx context.Context, token string, in domain.UpdateInput) error {
	return c.do(ctx, http.MethodPatch, "/api/projects", token, in, nil)
}

func (c *Client) DeleteProject(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects", token, domain.DeleteInput{ID: id}, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(raw, &msg) == nil {
			apiErr.Message, apiErr.Detail = msg.Message, msg.Error
		} else {
			apiErr.Detail = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error parsing response JSON: %w", err)
	}
	return nil
}
