package rest

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientURL(t *testing.T) {
	tests := []struct {
		base     string
		endpoint string
		want     string
	}{
		{"https://acme.aha.io/api/v1/", "features?page=1", "https://acme.aha.io/api/v1/features?page=1"},
		{"https://acme.aha.io/api/v1", "/features", "https://acme.aha.io/api/v1/features"},
		{"https://x.atlassian.net/wiki/api/v2/", "pages/42", "https://x.atlassian.net/wiki/api/v2/pages/42"},
	}
	for _, tt := range tests {
		c := NewClient("svc", tt.base, nil)
		assert.Equal(t, tt.want, c.URL(tt.endpoint))
	}
}

func TestGetBearerAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/api/v1/features", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	c := NewClient("Aha!", server.URL+"/api/v1/", BearerAuth{Token: "test-token"})
	var out struct {
		Features []interface{} `json:"features"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "features?page=2", &out))
	assert.NotNil(t, out.Features)
}

func TestGetBasicAuth(t *testing.T) {
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("me@example.com:secret"))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != want {
			t.Errorf("Authorization = %q, want %q", got, want)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient("Confluence", server.URL, BasicAuth{Username: "me@example.com", Token: "secret"})
	_, err := c.Get(context.Background(), "pages/1")
	require.NoError(t, err)
}

func TestGetNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"page not found"}`))
	}))
	defer server.Close()

	t.Run("without body", func(t *testing.T) {
		c := NewClient("Aha!", server.URL, BearerAuth{Token: "t"})
		_, err := c.Get(context.Background(), "features/NOPE-1")
		require.Error(t, err)
		assert.Equal(t, "Aha! API error: 404 Not Found", err.Error())
		assert.True(t, IsNotFound(err))
		assert.Equal(t, http.StatusNotFound, StatusCode(err))
	})

	t.Run("with body", func(t *testing.T) {
		c := NewClient("Confluence", server.URL, BasicAuth{Username: "u", Token: "t"})
		c.IncludeErrorBody = true
		_, err := c.Get(context.Background(), "pages/9")
		require.Error(t, err)
		assert.Equal(t, `Confluence API error: 404 Not Found - {"message":"page not found"}`, err.Error())
	})
}

func TestGetSingleAttemptOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient("Aha!", server.URL, BearerAuth{Token: "t"})
	_, err := c.Get(context.Background(), "features")
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "failed calls must not be retried")

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Service Unavailable", apiErr.Status)
}

func TestGetNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient("Aha!", url, BearerAuth{Token: "t"})
	_, err := c.Get(context.Background(), "features")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Zero(t, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "Aha! API error:")
}

func TestGetJSONMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c := NewClient("Aha!", server.URL, nil)
	var out map[string]interface{}
	err := c.GetJSON(context.Background(), "x", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse Aha! response")
}
