// Package api is a thin JSON client for the users/posts/comments REST
// resources. Each call is a single round trip: there are no retries and no
// caching. Every failure is reported as a network error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	pverrors "github.com/zhubert/postview/internal/errors"
	"github.com/zhubert/postview/internal/logger"
)

// RequestIDHeader carries a per-request UUID so client and server logs line up.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response body is logged.
const maxErrorBody = 512

// Client issues GET/POST/DELETE requests against a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (tests, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request. Zero keeps the default of no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        logger.WithComponent("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches path and decodes the JSON body into T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	err := c.do(ctx, pverrors.Op("api.Get"), http.MethodGet, path, nil, &out)
	return out, err
}

// PostJSON sends body as JSON to path and decodes the JSON response into T.
func PostJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	err := c.do(ctx, pverrors.Op("api.Post"), http.MethodPost, path, body, &out)
	return out, err
}

// Delete issues a DELETE for path. The response body is ignored.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, pverrors.Op("api.Delete"), http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, op pverrors.Op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pverrors.NetworkFailed(op, method, path, fmt.Errorf("failed to encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pverrors.NetworkFailed(op, method, path, fmt.Errorf("failed to create request: %w", err))
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed", "method", method, "path", path, "requestID", requestID, "error", err)
		return pverrors.NetworkFailed(op, method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"requestID", requestID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warn("unexpected status", "method", method, "path", path, "status", resp.StatusCode, "body", string(snippet))
		return pverrors.HTTPStatus(op, method, path, resp.StatusCode)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pverrors.NetworkFailed(op, method, path, fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}
