// Package cms is the REST client for the content backend that stores
// timesheets, tasks, uploads and user accounts.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/timesheet-relay/internal/config"
	"github.com/heartmarshall/timesheet-relay/internal/domain"
	"github.com/heartmarshall/timesheet-relay/pkg/ctxutil"
)

const maxResponseBytes = 4 << 20

// APIError is a non-2xx response from the backend. It unwraps to the
// matching domain sentinel so callers can use errors.Is.
type APIError struct {
	Op      string
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cms: %s: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("cms: %s: status %d", e.Op, e.Status)
}

func (e *APIError) Unwrap() error { return e.kind }

// PublicMessage is the backend's own description of the failure.
func (e *APIError) PublicMessage() string { return e.Message }

// Client talks to the content backend over JSON REST.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// New creates a Client from configuration.
func New(cfg config.CMSConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiToken:   cfg.APIToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "cms"),
	}
}

// Ping checks that the backend answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.doJSON(ctx, "ping", http.MethodGet, "/_health", nil, nil, nil)
}

// doJSON sends body as JSON and decodes a successful response into out.
// Either may be nil.
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cms: %s: encode body: %w", op, err)
		}
	}

	contentType := ""
	if payload != nil {
		contentType = "application/json"
	}

	return c.do(ctx, op, method, path, query, contentType, payload, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, contentType string, payload []byte, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	newRequest := func() (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
		if err != nil {
			return nil, err
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		req.Header.Set("Accept", "application/json")
		if token := c.bearer(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
			req.Header.Set("X-Request-Id", id)
		}
		return req, nil
	}

	c.log.DebugContext(ctx, "cms request", slog.String("op", op), slog.String("method", method), slog.String("path", path))

	resp, err := c.send(ctx, op, method, newRequest)
	if err != nil {
		c.log.ErrorContext(ctx, "cms request failed", slog.String("op", op), slog.String("error", err.Error()))
		return fmt.Errorf("cms: %s: %w: %w", op, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("cms: %s: read body: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(op, resp.StatusCode, data)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("cms: %s: decode json: %w", op, err)
	}
	return nil
}

// send executes the request. Reads are retried once on 5xx or network
// errors; writes are never retried.
func (c *Client) send(ctx context.Context, op, method string, newRequest func() (*http.Request, error)) (*http.Response, error) {
	req, err := newRequest()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || method != http.MethodGet {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "cms retry", slog.String("op", op), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	req, err = newRequest()
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

// bearer prefers the caller's session token over the service token.
func (c *Client) bearer(ctx context.Context) string {
	if token, ok := ctxutil.SessionTokenFromCtx(ctx); ok {
		return token
	}
	return c.apiToken
}

func newAPIError(op string, status int, body []byte) error {
	var parsed apiErrorBody
	_ = json.Unmarshal(body, &parsed)

	e := &APIError{Op: op, Status: status, Message: parsed.Error.Message}
	switch {
	case status == http.StatusNotFound:
		e.kind = domain.ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.kind = domain.ErrUnauthorized
	case status == http.StatusConflict:
		e.kind = domain.ErrConflict
	case status == http.StatusBadRequest:
		e.kind = domain.ErrValidation
	default:
		e.kind = domain.ErrUpstream
	}
	return e
}
