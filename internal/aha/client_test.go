package aha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steveyegge/digest/internal/config"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *[]string) {
	t.Helper()
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.RequestURI())
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return NewClientWithBaseURL(server.URL+"/api/v1/", "test-token"), &paths
}

func TestNewClientBaseURL(t *testing.T) {
	c := NewClient(config.AhaCredentials{Subdomain: "acme", Token: "tok"})
	assert.Equal(t, "https://acme.aha.io/api/v1/features", c.rest.URL("features"))
}

func TestFeatureScopePath(t *testing.T) {
	tests := []struct {
		scope FeatureScope
		want  string
	}{
		{FeatureScope{}, "features"},
		{FeatureScope{ProductID: "PROD"}, "products/PROD/features"},
		{FeatureScope{ReleaseID: "PROD-R-1"}, "releases/PROD-R-1/features"},
		{FeatureScope{InitiativeID: "PROD-I-2"}, "initiatives/PROD-I-2/features"},
		{FeatureScope{ProductID: "PROD", ReleaseID: "R1"}, "releases/R1/features"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.scope.path())
	}
}

func TestFeaturesDecodesEnvelope(t *testing.T) {
	c, paths := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"features": [
				{"id": "1", "reference_num": "PROD-1", "name": "Billing export",
				 "description": {"body": "<p>Export invoices</p>"},
				 "workflow_status": {"id": "s1", "name": "In Review", "color": "#fff"},
				 "release": {"id": "r1", "name": "Q3", "reference_num": "PROD-R-1", "released": false},
				 "tags": ["billing"], "progress": 40, "created_at": "2024-03-05T10:00:00Z"},
				{"id": "2", "reference_num": "PROD-2", "name": "Bare", "created_at": "2024-03-06T10:00:00Z"}
			],
			"pagination": {"total_records": 2, "total_pages": 1, "current_page": 1}
		}`))
	})

	params := url.Values{"page": {"1"}, "per_page": {"20"}}
	features, pag, err := c.Features(context.Background(), FeatureScope{ProductID: "PROD"}, params)
	require.NoError(t, err)
	require.Len(t, features, 2)
	assert.Equal(t, "/api/v1/products/PROD/features?page=1&per_page=20", (*paths)[0])

	f := features[0]
	assert.Equal(t, "PROD-1", f.ReferenceNum)
	require.NotNil(t, f.Description)
	assert.Equal(t, "<p>Export invoices</p>", f.Description.Body)
	require.NotNil(t, f.Progress)
	assert.Equal(t, 40.0, *f.Progress)

	bare := features[1]
	assert.Nil(t, bare.WorkflowStatus)
	assert.Nil(t, bare.Release)
	assert.Nil(t, bare.Progress)
	assert.Nil(t, bare.Description)

	require.NotNil(t, pag)
	assert.Equal(t, 2, pag.TotalRecords)
}

func TestMissingCollectionIsEmpty(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	features, _, err := c.Features(ctx, FeatureScope{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, features)
	assert.Empty(t, features)

	epics, err := c.ProductInitiatives(ctx, "PROD", nil)
	require.NoError(t, err)
	assert.Empty(t, epics)

	ideas, _, err := c.Ideas(ctx, "", nil)
	require.NoError(t, err)
	assert.Empty(t, ideas)

	users, _, err := c.PortalUsers(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, users)

	feature, err := c.Feature(ctx, "PROD-1")
	require.NoError(t, err)
	assert.Nil(t, feature)
}

func TestDescriptionForms(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"idea": {"id": "9", "reference_num": "IDEA-9", "name": "Dark mode",
			"description": "plain words", "promoted": true, "score": 12,
			"categories": [{"name": "UI"}], "votes_count": 3}}`))
	})

	idea, err := c.Idea(context.Background(), "IDEA-9")
	require.NoError(t, err)
	require.NotNil(t, idea)
	require.NotNil(t, idea.Description)
	assert.Equal(t, "plain words", idea.Description.Body)
	assert.True(t, idea.Promoted)
	assert.Equal(t, 3, *idea.VotesCount)
	assert.Nil(t, idea.CommentsCount)
}

func TestCustomFieldForms(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"idea_portal_users": [
			{"id": "u1", "organization": {"id": "o1", "reference_num": "ORG-1", "name": "Acme",
				"custom_fields": {"ARR": 120000, "tier": "Gold"}}},
			{"id": "u2", "organization": {"id": "o2", "reference_num": "ORG-2", "name": "Globex",
				"custom_fields": [{"key": "arr", "name": "ARR", "value": "50000"}]}},
			{"id": "u3"}
		]}`))
	})

	users, _, err := c.PortalUsers(context.Background(), url.Values{"page": {"1"}})
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, 120000.0, users[0].Organization.CustomFields["ARR"])
	assert.Equal(t, "Gold", users[0].Organization.CustomFields["tier"])
	assert.Equal(t, "50000", users[1].Organization.CustomFields["arr"])
	assert.Nil(t, users[2].Organization)
}

func TestFromEnvRequiresCredentials(t *testing.T) {
	require.NoError(t, config.Initialize())
	t.Setenv(config.EnvAhaSubdomain, "")
	t.Setenv(config.EnvAhaToken, "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrCredentials))
	assert.Contains(t, err.Error(), "credentials not configured")
}

func TestFromEnvBaseURLOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/products", r.URL.Path)
		w.Write([]byte(`{"products": [{"id": "p", "reference_prefix": "PROD", "name": "Platform"}]}`))
	}))
	defer server.Close()

	require.NoError(t, config.Initialize())
	config.Set("aha.base_url", server.URL+"/v1/")
	t.Setenv(config.EnvAhaSubdomain, "acme")
	t.Setenv(config.EnvAhaToken, "tok")

	c, err := FromEnv()
	require.NoError(t, err)
	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "PROD", products[0].ReferencePrefix)
}
