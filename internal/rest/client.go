// Package rest is the JSON-over-HTTPS transport shared by the Aha! and
// Confluence clients. It attaches credentials, performs exactly one request
// per call, and normalizes every failure into *Error.
package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/steveyegge/digest/internal/debug"
	"github.com/steveyegge/digest/internal/telemetry"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 50 * 1024 * 1024

const userAgent = "digest/1.0"

// Authorizer sets the Authorization header on an outgoing request.
type Authorizer interface {
	Authorize(req *http.Request)
}

// BearerAuth authenticates with a static API token.
type BearerAuth struct {
	Token string
}

func (a BearerAuth) Authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}

// BasicAuth authenticates with base64(username:token).
type BasicAuth struct {
	Username string
	Token    string
}

func (a BasicAuth) Authorize(req *http.Request) {
	auth := base64.StdEncoding.EncodeToString([]byte(a.Username + ":" + a.Token))
	req.Header.Set("Authorization", "Basic "+auth)
}

// Client performs authenticated GET requests against one service.
type Client struct {
	// Service is the display name used in errors and telemetry ("Aha!", "Confluence").
	Service string
	// BaseURL is prefixed to every endpoint. It should end with "/".
	BaseURL string
	Auth    Authorizer
	// IncludeErrorBody copies the response body into *Error for non-2xx responses.
	IncludeErrorBody bool
	HTTPClient       *http.Client
}

// NewClient creates a client for the named service.
func NewClient(service, baseURL string, auth Authorizer) *Client {
	return &Client{
		Service:    service,
		BaseURL:    baseURL,
		Auth:       auth,
		HTTPClient: &http.Client{},
	}
}

// URL joins the base URL and a relative endpoint.
func (c *Client) URL(endpoint string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(endpoint, "/")
}

// Get fetches endpoint (a path relative to BaseURL, query string included)
// and returns the raw response body. It never retries.
func (c *Client) Get(ctx context.Context, endpoint string) (body []byte, err error) {
	defer debug.Timed(c.Service+" GET "+endpoint, time.Now())

	ctx, done := telemetry.StartRequest(ctx, c.Service, http.MethodGet, endpoint)
	status := 0
	defer func() { done(status, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if c.Auth != nil {
		c.Auth.Authorize(req)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &Error{Service: c.Service, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	status = resp.StatusCode

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &Error{Service: c.Service, StatusCode: resp.StatusCode, Status: reasonPhrase(resp), Err: fmt.Errorf("read response: %w", err)}
	}

	debug.Logf("[rest] %s GET %s -> %d (%d bytes)\n", c.Service, endpoint, resp.StatusCode, len(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{
			Service:    c.Service,
			StatusCode: resp.StatusCode,
			Status:     reasonPhrase(resp),
		}
		if c.IncludeErrorBody {
			apiErr.Body = string(respBody)
			apiErr.IncludeBody = true
		}
		return nil, apiErr
	}

	return respBody, nil
}

// GetJSON fetches endpoint and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, endpoint string, v interface{}) error {
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parse %s response: %w", c.Service, err)
	}
	return nil
}

// reasonPhrase extracts "Not Found" from "404 Not Found".
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
