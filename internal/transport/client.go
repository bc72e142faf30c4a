// Package transport issues HTTP calls against the expense API, attaching
// the persisted Basic-auth credential and mapping responses onto the
// client error taxonomy. Transient server-side transaction aborts are
// retried with exponential backoff; everything else propagates unmodified.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/trackwise-dev/trackwise/internal/log"
)

// TokenSource supplies the Basic-auth token for outgoing requests.
type TokenSource interface {
	Token() (string, bool)
}

// Options configures a Client.
type Options struct {
	BaseURL        string
	Timeout        time.Duration // 0 = unbounded
	Tokens         TokenSource
	OnUnauthorized func() // invoked once per 401, before the AuthError returns
	Retry          Policy
	Logger         *log.Logger
}

// Client is the HTTP transport for the expense API.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
	retry          Policy
	log            *log.Logger
}

// NewClient creates a Client from options. A nil Logger discards.
func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	return &Client{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		http:           &http.Client{Timeout: opts.Timeout},
		tokens:         opts.Tokens,
		onUnauthorized: opts.OnUnauthorized,
		retry:          opts.Retry,
		log:            logger,
	}
}

// Do issues one API call. body (if non-nil) is sent as JSON. The response
// is decoded into out: JSON for most targets, raw text when out is a
// *string (the delete endpoint returns a plain confirmation). A nil out
// discards the response body.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	attempt := 0
	return c.retry.Do(ctx, func() error {
		attempt++
		if attempt > 1 {
			c.log.Warn("retrying request", "method", method, "path", path, "attempt", attempt)
		}
		return c.once(ctx, method, path, payload, out)
	})
}

func (c *Client) once(ctx context.Context, method, path string, payload []byte, out any) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Basic "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}

	switch target := out.(type) {
	case nil:
		return nil
	case *string:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &NetworkError{Err: err}
		}
		*target = strings.TrimSpace(string(data))
		return nil
	default:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}
}

// statusError maps an error response onto the taxonomy. A 401 clears the
// persisted credential first, so every consumer sees the session as
// unauthenticated from this point on.
func (c *Client) statusError(resp *http.Response) error {
	msg := errorMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Warn("authentication rejected, clearing session")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &AuthError{Message: msg}
	case resp.StatusCode == http.StatusConflict:
		return &ConflictError{Message: msg}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Message: msg}
	case resp.StatusCode >= 500:
		return &ServerError{Status: resp.StatusCode, Message: msg}
	default:
		return &ValidationError{Status: resp.StatusCode, Message: msg}
	}
}

// errorMessage extracts the server's {"message": ...} error text, falling
// back to the raw body.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64*1024))
	if err != nil {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(data))
}
