package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/memoday/memoday-backend/internal/domain"
)

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("memo not found")
	ErrValidation   = errors.New("title and content are required")
)

// Config configures the API client
type Config struct {
	BaseURL      string
	SessionToken string
	Timeout      time.Duration
}

// Client is an HTTP client for the memoday API
type Client struct {
	http *resty.Client
}

// New creates a new API client. The session token is sent as a Bearer
// header; the server accepts it interchangeably with the session cookie.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.SessionToken)

	return &Client{http: cli}
}

// envelope mirrors the server's APIResponse
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ListMemos fetches all memos owned by the session user
func (c *Client) ListMemos(ctx context.Context) ([]domain.MemoResponse, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/memos")
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	var memos []domain.MemoResponse
	if err := c.unwrap(resp, &memos); err != nil {
		return nil, err
	}
	return memos, nil
}

// GetMemo fetches one owned memo
func (c *Client) GetMemo(ctx context.Context, id int) (*domain.MemoResponse, error) {
	resp, err := c.http.R().SetContext(ctx).Get(fmt.Sprintf("/api/memos/%d", id))
	if err != nil {
		return nil, fmt.Errorf("get memo: %w", err)
	}
	var memo domain.MemoResponse
	if err := c.unwrap(resp, &memo); err != nil {
		return nil, err
	}
	return &memo, nil
}

// CreateMemo creates a memo owned by the session user
func (c *Client) CreateMemo(ctx context.Context, req domain.MemoRequest) (*domain.MemoResponse, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(req).Post("/api/memos")
	if err != nil {
		return nil, fmt.Errorf("create memo: %w", err)
	}
	var memo domain.MemoResponse
	if err := c.unwrap(resp, &memo); err != nil {
		return nil, err
	}
	return &memo, nil
}

// UpdateMemo overwrites title and content of an owned memo
func (c *Client) UpdateMemo(ctx context.Context, id int, req domain.MemoRequest) (*domain.MemoResponse, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(req).Put(fmt.Sprintf("/api/memos/%d", id))
	if err != nil {
		return nil, fmt.Errorf("update memo: %w", err)
	}
	var memo domain.MemoResponse
	if err := c.unwrap(resp, &memo); err != nil {
		return nil, err
	}
	return &memo, nil
}

// DeleteMemo removes an owned memo
func (c *Client) DeleteMemo(ctx context.Context, id int) error {
	resp, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/api/memos/%d", id))
	if err != nil {
		return fmt.Errorf("delete memo: %w", err)
	}
	return c.unwrap(resp, nil)
}

// Me returns the identity behind the session token
func (c *Client) Me(ctx context.Context) (*domain.SessionInfo, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/auth/me")
	if err != nil {
		return nil, fmt.Errorf("session info: %w", err)
	}
	var info domain.SessionInfo
	if err := c.unwrap(resp, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// unwrap maps error statuses and decodes the data payload
func (c *Client) unwrap(resp *resty.Response, dest interface{}) error {
	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrValidation
	default:
		return fmt.Errorf("server error: status %d", resp.StatusCode())
	}

	if dest == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
