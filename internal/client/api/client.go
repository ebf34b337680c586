package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/recco/internal/client/models"
	"github.com/dmitrijs2005/recco/internal/logging"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty string means "no token": the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a plain function to the TokenSource interface.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// Client talks to the recco REST backend. One method per backend operation,
// no retries, no caching; each call hits the network fresh and honors the
// caller's context.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// New builds a Client for the given base URL (e.g. "http://localhost:8080/api").
// tokens may be nil for a client that never authenticates.
func New(baseURL string, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// errorBody is the backend's error payload shape.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one JSON round trip. body and out may be nil. Transport
// failures wrap ErrUnavailable; HTTP error statuses become *RequestError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		reqErr := &RequestError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Message != "" {
			reqErr.Message = eb.Message
		}
		c.log.Debug(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return reqErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// LoginResponse is the payload of POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a JWT.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// RegisterRequest carries the fields for account creation.
type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account via POST /auth/register.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &u)
	return u, err
}

// CreateUser creates an account via the legacy POST /user endpoint.
func (c *Client) CreateUser(ctx context.Context, req RegisterRequest) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPost, "/user", req, &u)
	return u, err
}

// ListUsers fetches the full user directory.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/users", nil, &users)
	return users, err
}

// GetUserByID fetches one user record.
func (c *Client) GetUserByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/users/id/"+url.PathEscape(id), nil, &u)
	return u, err
}

// GetUserByName fetches one user record by exact name.
func (c *Client) GetUserByName(ctx context.Context, name string) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/users/name/"+url.PathEscape(name), nil, &u)
	return u, err
}

// GetDashboard lists the interest types available to a user.
func (c *Client) GetDashboard(ctx context.Context, userID string) ([]models.InterestType, error) {
	var types []models.InterestType
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID)+"/dashboard", nil, &types)
	return types, err
}

// GetUserInterests lists one user's chosen interests.
func (c *Client) GetUserInterests(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	err := c.do(ctx, http.MethodGet, "/users/interests/"+url.PathEscape(userID), nil, &posts)
	return posts, err
}

// AddInterestType defines a new interest type.
func (c *Client) AddInterestType(ctx context.Context, it models.InterestType) (models.InterestType, error) {
	var created models.InterestType
	err := c.do(ctx, http.MethodPost, "/users/interests", it, &created)
	return created, err
}

// GetInterestPosts lists all users' posts for an interest code.
func (c *Client) GetInterestPosts(ctx context.Context, code string) ([]models.Post, error) {
	var posts []models.Post
	err := c.do(ctx, http.MethodGet, "/interests/"+url.PathEscape(code)+"/posts", nil, &posts)
	return posts, err
}

// UpdatePostDescription changes one post's description and returns the
// updated record as the server stored it. An empty description is sent as
// null, which the backend treats as clearing the field.
func (c *Client) UpdatePostDescription(ctx context.Context, postID, description string) (models.Post, error) {
	var desc *string
	if description != "" {
		desc = &description
	}
	req := struct {
		Description *string `json:"description"`
	}{Description: desc}

	var updated models.Post
	err := c.do(ctx, http.MethodPut, "/interests/posts/"+url.PathEscape(postID), req, &updated)
	return updated, err
}
