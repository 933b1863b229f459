package aha

import (
	"context"
	"fmt"
	"net/url"

	"github.com/steveyegge/digest/internal/config"
	"github.com/steveyegge/digest/internal/rest"
)

// ServiceName is how Aha! is named in errors and telemetry.
const ServiceName = "Aha!"

// Client provides read access to an Aha! account.
type Client struct {
	rest *rest.Client
}

// NewClient creates a client for https://<subdomain>.aha.io/api/v1/.
func NewClient(creds config.AhaCredentials) *Client {
	return NewClientWithBaseURL(fmt.Sprintf("https://%s.aha.io/api/v1/", creds.Subdomain), creds.Token)
}

// NewClientWithBaseURL creates a client against an explicit API root.
func NewClientWithBaseURL(baseURL, token string) *Client {
	return &Client{rest: rest.NewClient(ServiceName, baseURL, rest.BearerAuth{Token: token})}
}

// FromEnv resolves credentials now and builds a client. It fails before any
// network I/O when AHA_SUBDOMAIN or AHA_API_TOKEN is missing.
func FromEnv() (*Client, error) {
	creds, err := config.Aha()
	if err != nil {
		return nil, err
	}
	if base := config.GetString("aha.base_url"); base != "" {
		return NewClientWithBaseURL(base, creds.Token), nil
	}
	return NewClient(creds), nil
}

// FeatureScope selects which collection a feature listing reads from.
// At most one field should be set; ReleaseID wins over InitiativeID, which
// wins over ProductID.
type FeatureScope struct {
	ProductID    string
	ReleaseID    string
	InitiativeID string
}

func (s FeatureScope) path() string {
	switch {
	case s.ReleaseID != "":
		return "releases/" + url.PathEscape(s.ReleaseID) + "/features"
	case s.InitiativeID != "":
		return "initiatives/" + url.PathEscape(s.InitiativeID) + "/features"
	case s.ProductID != "":
		return "products/" + url.PathEscape(s.ProductID) + "/features"
	default:
		return "features"
	}
}

func endpoint(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

// Features lists features in scope. params carries paging and an optional q.
// A response without a "features" key yields an empty slice.
func (c *Client) Features(ctx context.Context, scope FeatureScope, params url.Values) ([]Feature, *Pagination, error) {
	var env struct {
		Features   []Feature   `json:"features"`
		Pagination *Pagination `json:"pagination"`
	}
	if err := c.rest.GetJSON(ctx, endpoint(scope.path(), params), &env); err != nil {
		return nil, nil, err
	}
	return nonNil(env.Features), env.Pagination, nil
}

// Feature fetches one feature by id or reference number. It returns nil, nil
// when the response has no "feature" object.
func (c *Client) Feature(ctx context.Context, id string) (*Feature, error) {
	var env struct {
		Feature *Feature `json:"feature"`
	}
	if err := c.rest.GetJSON(ctx, "features/"+url.PathEscape(id), &env); err != nil {
		return nil, err
	}
	return env.Feature, nil
}

// Initiative fetches one initiative by id or reference number.
func (c *Client) Initiative(ctx context.Context, id string) (*Initiative, error) {
	var env struct {
		Initiative *Initiative `json:"initiative"`
	}
	if err := c.rest.GetJSON(ctx, "initiatives/"+url.PathEscape(id), &env); err != nil {
		return nil, err
	}
	return env.Initiative, nil
}

// ProductInitiatives lists a product's initiatives. Aha! serves them from
// the epics collection under the "epics" key.
func (c *Client) ProductInitiatives(ctx context.Context, productID string, params url.Values) ([]Initiative, error) {
	var env struct {
		Epics []Initiative `json:"epics"`
	}
	path := "products/" + url.PathEscape(productID) + "/epics"
	if err := c.rest.GetJSON(ctx, endpoint(path, params), &env); err != nil {
		return nil, err
	}
	return nonNil(env.Epics), nil
}

// Ideas lists ideas, optionally within a product.
func (c *Client) Ideas(ctx context.Context, productID string, params url.Values) ([]Idea, *Pagination, error) {
	path := "ideas"
	if productID != "" {
		path = "products/" + url.PathEscape(productID) + "/ideas"
	}
	var env struct {
		Ideas      []Idea      `json:"ideas"`
		Pagination *Pagination `json:"pagination"`
	}
	if err := c.rest.GetJSON(ctx, endpoint(path, params), &env); err != nil {
		return nil, nil, err
	}
	return nonNil(env.Ideas), env.Pagination, nil
}

// Idea fetches one idea by id or reference number.
func (c *Client) Idea(ctx context.Context, id string) (*Idea, error) {
	var env struct {
		Idea *Idea `json:"idea"`
	}
	if err := c.rest.GetJSON(ctx, "ideas/"+url.PathEscape(id), &env); err != nil {
		return nil, err
	}
	return env.Idea, nil
}

// PortalUsers lists idea-portal users with their embedded organizations.
func (c *Client) PortalUsers(ctx context.Context, params url.Values) ([]PortalUser, *Pagination, error) {
	var env struct {
		Users      []PortalUser `json:"idea_portal_users"`
		Pagination *Pagination  `json:"pagination"`
	}
	if err := c.rest.GetJSON(ctx, endpoint("idea_portal_users", params), &env); err != nil {
		return nil, nil, err
	}
	return nonNil(env.Users), env.Pagination, nil
}

// Products lists all products visible to the token.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var env struct {
		Products []Product `json:"products"`
	}
	if err := c.rest.GetJSON(ctx, "products", &env); err != nil {
		return nil, err
	}
	return nonNil(env.Products), nil
}

// Product fetches one product by id or reference prefix.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var env struct {
		Product *Product `json:"product"`
	}
	if err := c.rest.GetJSON(ctx, "products/"+url.PathEscape(id), &env); err != nil {
		return nil, err
	}
	return env.Product, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
