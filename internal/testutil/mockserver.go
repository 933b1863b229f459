// Package testutil provides a recording mock HTTP server for the Aha! and
// Confluence client tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// RecordedRequest stores information about a request made to the mock server.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Headers  http.Header
}

// MockResponse is a configured response for one path.
type MockResponse struct {
	StatusCode int
	Body       interface{}
	// Raw, when set, is written verbatim instead of Body.
	Raw string
}

// MockServer serves configured JSON responses by path and records every request.
type MockServer struct {
	Server *httptest.Server

	mu        sync.RWMutex
	requests  []RecordedRequest
	responses map[string]MockResponse
}

// NewMockServer starts a mock server. Unconfigured paths return 404.
func NewMockServer() *MockServer {
	m := &MockServer{responses: make(map[string]MockResponse)}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handleRequest))
	return m
}

func (m *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Headers:  r.Header.Clone(),
	})
	resp, found := m.responses[r.URL.Path]
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !found {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]string{"error": "Not found"})
		return
	}
	if resp.StatusCode != 0 {
		w.WriteHeader(resp.StatusCode)
	}
	if resp.Raw != "" {
		_, _ = w.Write([]byte(resp.Raw))
		return
	}
	if resp.Body != nil {
		writeJSON(w, resp.Body)
	}
}

// URL returns the mock server URL.
func (m *MockServer) URL() string {
	return m.Server.URL
}

// Close shuts down the mock server.
func (m *MockServer) Close() {
	m.Server.Close()
}

// SetResponse configures a JSON response for a path.
func (m *MockServer) SetResponse(path string, statusCode int, body interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = MockResponse{StatusCode: statusCode, Body: body}
}

// SetRawResponse configures a verbatim response body for a path.
func (m *MockServer) SetRawResponse(path string, statusCode int, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = MockResponse{StatusCode: statusCode, Raw: raw}
}

// GetRequests returns all recorded requests.
func (m *MockServer) GetRequests() []RecordedRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]RecordedRequest, len(m.requests))
	copy(result, m.requests)
	return result
}

// GetRequestCount returns the number of recorded requests.
func (m *MockServer) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	_ = json.NewEncoder(w).Encode(v)
}
