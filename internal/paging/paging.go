// Package paging translates page/offset and cursor requests into the query
// parameters each service expects, clamping sizes to documented maximums.
package paging

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20

	// AhaMaxPerPage is the largest per_page Aha! honors on offset listings.
	AhaMaxPerPage = 100

	ConfluenceDefaultLimit       = 25
	ConfluenceSearchDefaultLimit = 10
	// ConfluenceSearchMaxLimit applies to title searches.
	ConfluenceSearchMaxLimit = 25
	// ConfluenceListMaxLimit applies to space listings and child pages.
	ConfluenceListMaxLimit = 250
)

// Size returns requested capped at max. Non-positive requests get def.
// Oversized requests are silently capped, never rejected.
func Size(requested, def, max int) int {
	if requested <= 0 {
		requested = def
	}
	if requested > max {
		return max
	}
	return requested
}

// Offset is a 1-based page request.
type Offset struct {
	Page    int
	PerPage int
}

// Values returns page and per_page parameters with per_page clamped to max.
func (o Offset) Values(max int) url.Values {
	page := o.Page
	if page <= 0 {
		page = DefaultPage
	}
	return url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(Size(o.PerPage, DefaultPerPage, max))},
	}
}

// PerPageOnly returns just per_page, for endpoints queried without a page
// number (searches, full-product scans).
func PerPageOnly(perPage, max int) url.Values {
	return url.Values{"per_page": {strconv.Itoa(Size(perPage, DefaultPerPage, max))}}
}

// Cursor is an opaque continuation token. It is passed back to the service
// exactly as received.
type Cursor string

// Apply adds the cursor to v when non-empty.
func (c Cursor) Apply(v url.Values) {
	if c != "" {
		v.Set("cursor", string(c))
	}
}

// NextCursor extracts the cursor from a "next" link such as
// "/wiki/api/v2/pages?cursor=abc&limit=25". When the link carries no cursor
// parameter the link itself is returned. The token is never decoded.
func NextCursor(next string) Cursor {
	if next == "" {
		return ""
	}
	if i := strings.IndexByte(next, '?'); i >= 0 {
		if q, err := url.ParseQuery(next[i+1:]); err == nil {
			if c := q.Get("cursor"); c != "" {
				return Cursor(c)
			}
		}
	}
	return Cursor(next)
}
