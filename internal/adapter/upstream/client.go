package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cashout-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends JSON requests to one remote service.
type Client struct {
	service  string
	baseURL  string
	http     HTTPClient
	log      zerolog.Logger
	username string
	password string
}

// Option configures a Client.
type Option func(*Client)

// WithBasicAuth sends HTTP basic credentials on every request.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// NewClient creates a client for service rooted at baseURL.
func NewClient(service, baseURL string, httpClient HTTPClient, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log.With().Str("upstream", service).Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service returns the name used in logs, metrics and errors.
func (c *Client) Service() string {
	return c.service
}

// Configured reports whether the client has somewhere to send requests.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Response is a 2xx answer from the remote service.
type Response struct {
	Status int
	Body   []byte
}

// Do sends a request with an optional JSON body and returns the raw 2xx
// response. Transport failures and non-2xx answers become *ports.UpstreamError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	if !c.Configured() {
		return nil, &ports.UpstreamError{Service: c.service, Message: "base URL not configured", Err: ports.ErrNotConfigured}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s request: %w", c.service, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observe(c.service, method, outcomeTransportError, started)
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("upstream request failed")
		return nil, &ports.UpstreamError{Service: c.service, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		observe(c.service, method, outcomeTransportError, started)
		return nil, &ports.UpstreamError{Service: c.service, Status: resp.StatusCode, Message: "reading response failed", Err: err}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(started)).
		Msg("upstream call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observe(c.service, method, outcomeHTTPError, started)
		return nil, &ports.UpstreamError{
			Service: c.service,
			Status:  resp.StatusCode,
			Body:    raw,
			Message: messageFrom(raw, http.StatusText(resp.StatusCode)),
		}
	}

	observe(c.service, method, outcomeOK, started)
	return &Response{Status: resp.StatusCode, Body: raw}, nil
}

// DoJSON is Do followed by decoding the body into out. Empty, HTML and
// malformed bodies are reported as *ports.UpstreamError.
func (c *Client) DoJSON(ctx context.Context, method, path string, query url.Values, body, out any) (*Response, error) {
	resp, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	if err := c.decode(resp, out); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) decode(resp *Response, out any) error {
	trimmed := bytes.TrimSpace(resp.Body)
	switch {
	case len(trimmed) == 0:
		return c.invalid(resp, "returned an empty response", nil)
	case looksLikeHTML(trimmed):
		return c.invalid(resp, "returned an HTML page instead of JSON", nil)
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return c.invalid(resp, "returned malformed JSON", err)
	}
	return nil
}

func (c *Client) invalid(resp *Response, msg string, err error) *ports.UpstreamError {
	return &ports.UpstreamError{Service: c.service, Status: resp.Status, Body: resp.Body, Message: msg, Err: err}
}

// Rejected builds the error for a 2xx answer whose payload reported failure.
func (c *Client) Rejected(resp *Response, message string) *ports.UpstreamError {
	if message == "" {
		message = "request rejected"
	}
	return &ports.UpstreamError{Service: c.service, Status: resp.Status, Body: resp.Body, Message: message}
}

func looksLikeHTML(b []byte) bool {
	lower := bytes.ToLower(b[:min(len(b), 64)])
	return bytes.HasPrefix(lower, []byte("<!doctype")) || bytes.HasPrefix(lower, []byte("<html"))
}

// messageFrom pulls a human-readable message out of an error body.
func messageFrom(body []byte, fallback string) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return fallback
	}
	for _, key := range []string{"Message", "message", "ErrorMessage", "error", "Error"} {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}
