// Package backend provides the typed HTTP client for the AI HR backend REST
// surface. Every call is a single attempt; the client applies no retries and
// no request timeout of its own, so cancellation is the caller's context.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error represents a failed backend call.
type Error struct {
	Step       string
	StatusCode int
	Detail     string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %v", e.Step, e.Cause)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s failed: %s", e.Step, e.Detail)
	}
	return fmt.Sprintf("%s (%d)", e.Step, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsTransport reports whether err is a backend call that never produced an
// HTTP response (connection failure, cancelled context). Callers that mirror
// the original fire-and-forget endpoints care only about this class.
func IsTransport(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.StatusCode == 0
}

// Client calls the AI HR backend.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// do executes a request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses become an *Error carrying the detail or message
// field of the body when one is present.
func (c *Client) do(req *http.Request, step string, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Step: step, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Step: step, StatusCode: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Step:       step,
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(body, step, resp.StatusCode),
		}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &Error{Step: step, StatusCode: resp.StatusCode, Cause: err}
		}
	}
	return nil
}

// errorDetail extracts a human-readable failure reason from an error body.
func errorDetail(body []byte, step string, status int) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return fmt.Sprintf("%s (%d): %s", step, status, text)
	}
	return fmt.Sprintf("%s (%d)", step, status)
}

func (c *Client) postJSON(ctx context.Context, path, step string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &Error{Step: step, Cause: err}
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return &Error{Step: step, Cause: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, step, out)
}
