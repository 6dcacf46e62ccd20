// Package rest implements the request pipeline: it attaches the bearer
// credential to outbound calls, classifies responses into the domain error
// taxonomy, and performs at most one transparent refresh-and-retry per
// logical call.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/hausbar/drinkwise/internal/core/domain"
	"github.com/hausbar/drinkwise/internal/core/ports"
	"github.com/hausbar/drinkwise/internal/metrics"
)

// Doer abstracts the HTTP transport so tests can substitute a stub.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client executes API calls against a single base URL with a shared token
// store. Safe for concurrent use.
type Client struct {
	baseURL string
	http    Doer
	store   ports.TokenStore
	logger  zerolog.Logger
	refresh singleflight.Group
}

// NewClient creates a Client for baseURL (no trailing slash required). When
// httpClient is nil a default client with a 15s timeout is used.
func NewClient(baseURL string, store ports.TokenStore, httpClient Doer, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		store:   store,
		logger:  logger,
	}
}

// Do executes one logical call with at most one refresh-and-retry cycle.
//
// Phase one issues the call with the stored access token. On a 401 for an
// authenticated call, phase two exchanges the refresh token (single-flight
// across concurrent callers) and re-issues the call exactly once. A second
// 401 is surfaced as domain.ErrUnauthenticated without another refresh; a
// failed exchange clears the store and yields domain.ErrSessionExpired.
func (c *Client) Do(ctx context.Context, call ports.Call, out any) error {
	start := time.Now()
	err := c.run(ctx, call, out)
	metrics.RequestDuration.WithLabelValues(call.Method).Observe(time.Since(start).Seconds())
	metrics.RequestsTotal.WithLabelValues(call.Method, outcomeLabel(err)).Inc()
	return err
}

func (c *Client) run(ctx context.Context, call ports.Call, out any) error {
	access := ""
	if !call.SkipAuth {
		pair, err := c.store.Tokens(ctx)
		if err != nil {
			return fmt.Errorf("read token store: %w", err)
		}
		if pair.Access == "" {
			return domain.ErrUnauthenticated
		}
		access = pair.Access
	}

	rejected, err := c.attempt(ctx, call, access, out)
	if !rejected {
		return err
	}

	// The server rejected the access token. Refresh once, then retry once.
	newAccess, refreshErr := c.refreshAccess(ctx)
	if refreshErr != nil {
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.logger.Error().Err(clearErr).Msg("failed to clear token store")
		}
		return domain.ErrSessionExpired
	}

	metrics.RetriesTotal.Inc()
	rejected, err = c.attempt(ctx, call, newAccess, out)
	if rejected {
		return domain.ErrUnauthenticated
	}
	return err
}

// attempt issues the call once. rejected is true only when an authenticated
// call came back 401, which is the pipeline's cue to refresh; every other
// outcome is final.
func (c *Client) attempt(ctx context.Context, call ports.Call, access string, out any) (rejected bool, err error) {
	req, err := c.newRequest(ctx, call, access)
	if err != nil {
		return false, err
	}

	reqID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Str("request_id", reqID).Str("method", call.Method).Str("path", call.Path).Err(err).Msg("transport failure")
		return false, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("request_id", reqID).
		Str("method", call.Method).
		Str("path", call.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api call")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, decodeBody(resp.Body, out)
	}
	if resp.StatusCode == http.StatusUnauthorized && !call.SkipAuth {
		return true, domain.ErrUnauthenticated
	}
	return false, classifyError(resp)
}

func (c *Client) newRequest(ctx context.Context, call ports.Call, access string) (*http.Request, error) {
	var body io.Reader
	if call.Body != nil {
		buf, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	u := c.baseURL + call.Path
	if len(call.Query) > 0 {
		u += "?" + call.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	return req, nil
}

func decodeBody(r io.Reader, out any) error {
	if out == nil {
		return nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// classifyError maps a non-2xx, non-retryable response onto the domain
// error taxonomy, preferring the server-provided message when the payload
// can be decoded.
func classifyError(resp *http.Response) error {
	msg := errorMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// Only reachable for SkipAuth calls: a rejected login.
		return domain.ErrInvalidCredentials
	case http.StatusConflict:
		if msg != "" {
			return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
		}
		return domain.ErrConflict
	}
	return domain.NewRequestError(resp.StatusCode, msg)
}

// errorMessage extracts a human-readable message from a server error
// payload. The server answers either {"detail": "..."}, {"error": "..."} or
// a DRF field-error map like {"username": ["already taken"]}.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil || len(data) == 0 {
		return ""
	}

	var envelope struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Detail != "" {
			return envelope.Detail
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err == nil {
		parts := make([]string, 0, len(fields))
		for name, raw := range fields {
			var msgs []string
			if err := json.Unmarshal(raw, &msgs); err == nil && len(msgs) > 0 {
				parts = append(parts, name+": "+strings.Join(msgs, "; "))
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	return ""
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrSessionExpired):
		return "session_expired"
	case errors.Is(err, domain.ErrNetwork):
		return "network_error"
	default:
		return "request_failed"
	}
}
