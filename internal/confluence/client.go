package confluence

import (
	"context"
	"fmt"
	"net/url"

	"github.com/steveyegge/digest/internal/config"
	"github.com/steveyegge/digest/internal/rest"
)

// ServiceName is how Confluence is named in errors and telemetry.
const ServiceName = "Confluence"

// Client provides read access to pages on one Confluence Cloud site.
type Client struct {
	rest   *rest.Client
	domain string
}

// NewClient creates a client for https://<domain>/wiki/api/v2/.
func NewClient(creds config.ConfluenceCredentials) *Client {
	return NewClientWithBaseURL(fmt.Sprintf("https://%s/wiki/api/v2/", creds.Domain), creds)
}

// NewClientWithBaseURL creates a client against an explicit API root. Web
// links are still built from creds.Domain.
func NewClientWithBaseURL(baseURL string, creds config.ConfluenceCredentials) *Client {
	rc := rest.NewClient(ServiceName, baseURL, rest.BasicAuth{Username: creds.Email, Token: creds.Token})
	rc.IncludeErrorBody = true
	return &Client{rest: rc, domain: creds.Domain}
}

// FromEnv resolves credentials now and builds a client. It fails before any
// network I/O when any of the three Confluence variables is missing.
func FromEnv() (*Client, error) {
	creds, err := config.Confluence()
	if err != nil {
		return nil, err
	}
	if base := config.GetString("confluence.base_url"); base != "" {
		return NewClientWithBaseURL(base, creds), nil
	}
	return NewClient(creds), nil
}

// WebURL turns a page's _links.webui path into an absolute browser URL.
func (c *Client) WebURL(webui string) string {
	return "https://" + c.domain + "/wiki" + webui
}

// Page fetches one page. When includeBody is set the storage-format body
// is requested too.
func (c *Client) Page(ctx context.Context, id string, includeBody bool) (*Page, error) {
	ep := "pages/" + url.PathEscape(id)
	if includeBody {
		ep += "?body-format=storage"
	}
	var page Page
	if err := c.rest.GetJSON(ctx, ep, &page); err != nil {
		return nil, err
	}
	if page.ID == "" && page.Title == "" {
		return nil, nil
	}
	return &page, nil
}

// Pages lists pages filtered by params (title, space-id, limit, cursor).
func (c *Client) Pages(ctx context.Context, params url.Values) (*PageList, error) {
	return c.list(ctx, "pages", params)
}

// Children lists the direct child pages of id.
func (c *Client) Children(ctx context.Context, id string, params url.Values) (*PageList, error) {
	return c.list(ctx, "pages/"+url.PathEscape(id)+"/children", params)
}

func (c *Client) list(ctx context.Context, path string, params url.Values) (*PageList, error) {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var list PageList
	if err := c.rest.GetJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	if list.Results == nil {
		list.Results = []Page{}
	}
	return &list, nil
}
