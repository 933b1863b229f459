// Package digest renders normalized records into bounded, human-readable
// markdown reports. Large collections are grouped and each group is capped,
// with an exact "... and K more" line for the overflow.
package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/steveyegge/digest/internal/normalize"
)

// Per-group item caps.
const (
	StatusGroupCap  = 5
	ReleaseGroupCap = 3
	InitiativeCap   = 10
	// Uncapped renders every item.
	Uncapped = 0

	// IdeaPreviewLen and PagePreviewLen bound description and body previews.
	IdeaPreviewLen = 200
	PagePreviewLen = 2000
)

// Renderer holds presentation settings shared by all reports.
type Renderer struct {
	DateLayout string
}

// New returns a renderer using layout for dates; "" selects month/day/year.
func New(layout string) *Renderer {
	if layout == "" {
		layout = normalize.DefaultDateLayout
	}
	return &Renderer{DateLayout: layout}
}

func (r *Renderer) date(t time.Time) string {
	return normalize.FormatDate(t, r.DateLayout)
}

// heading is the "<reference>: <name>" form every entity line starts with.
func heading(ref, name string) string {
	return ref + ": " + name
}

// More renders the overflow line for k hidden items.
func More(k int) string {
	return fmt.Sprintf("... and %d more", k)
}

// writeCapped writes one line per shown item followed by an overflow line
// when the group exceeds limit.
func writeCapped[T any](b *strings.Builder, items []T, limit int, line func(T) string) {
	shown, more := Head(items, limit)
	for _, item := range shown {
		b.WriteString(line(item))
	}
	if more > 0 {
		fmt.Fprintf(b, "  %s\n", More(more))
	}
}

// NoneMatching is the empty-search message.
func NoneMatching(entities, query string) string {
	return fmt.Sprintf("No %s found matching \"%s\".", entities, query)
}

// NoneFor is the empty-listing message scoped to a filter, e.g.
// "No features found for product PROD.".
func NoneFor(entities, scope, id string) string {
	return fmt.Sprintf("No %s found for %s %s.", entities, scope, id)
}

// NoneIn is the unfiltered empty-listing message.
func NoneIn(entities, where string) string {
	return fmt.Sprintf("No %s found in %s.", entities, where)
}

// NotFound is the message for a single entity absent from the response.
func NotFound(kind, id string) string {
	return fmt.Sprintf("%s %s not found.", kind, id)
}

// PageHint is the footer for an offset listing with pages left, or "".
func PageHint(p normalize.PageInfo) string {
	if !p.HasNext() {
		return ""
	}
	return fmt.Sprintf("\n\n*Page %d of %d (%d total) - use page=%d for more*",
		p.Current, p.TotalPages, p.TotalRecords, p.Current+1)
}
