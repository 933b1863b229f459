package digest

import (
	"fmt"
	"strings"

	"github.com/steveyegge/digest/internal/normalize"
	"github.com/steveyegge/digest/internal/paging"
)

// Linker turns a page's UI-relative link into an absolute URL.
type Linker interface {
	WebURL(webui string) string
}

// Page renders one page with metadata and, when showBody is set and the page
// carries a body, a bounded content preview.
func (r *Renderer) Page(p normalize.Page, links Linker, showBody bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n**%s**\n\n", p.Title)
	b.WriteString("**Page Details:**\n")
	fmt.Fprintf(&b, "- ID: %s\n", p.ID)
	fmt.Fprintf(&b, "- Status: %s\n", p.Status)
	fmt.Fprintf(&b, "- Space ID: %s\n", p.SpaceID)
	fmt.Fprintf(&b, "- Created: %s\n", r.date(p.Created))
	fmt.Fprintf(&b, "- Last Modified: %s\n", r.date(p.Modified))
	fmt.Fprintf(&b, "- Version: %d\n", p.Version)
	fmt.Fprintf(&b, "- Web URL: %s\n", links.WebURL(p.WebUI))

	if showBody && p.HasBody {
		fmt.Fprintf(&b, "\n**Content:**\n%s\n", normalize.Truncate(p.Content, PagePreviewLen))
	}
	return b.String()
}

// PageSearch renders title-search hits.
func (r *Renderer) PageSearch(query string, pages []normalize.Page, links Linker) string {
	entries := make([]string, len(pages))
	for i, p := range pages {
		entries[i] = fmt.Sprintf("**%s**\nID: %s | Space: %s | Modified: %s\nURL: %s\n---",
			p.Title, p.ID, p.SpaceID, r.date(p.Modified), links.WebURL(p.WebUI))
	}
	return fmt.Sprintf("Found %d pages matching \"%s\":\n\n%s", len(pages), query, strings.Join(entries, "\n"))
}

// SpacePages renders one page of a space listing. A non-empty next cursor
// adds a continuation hint.
func (r *Renderer) SpacePages(spaceID string, pages []normalize.Page, next paging.Cursor) string {
	entries := make([]string, len(pages))
	for i, p := range pages {
		entries[i] = fmt.Sprintf("**%s**\nID: %s | Version: %d | Modified: %s\n---",
			p.Title, p.ID, p.Version, r.date(p.Modified))
	}
	out := fmt.Sprintf("Found %d pages in space %s:\n\n%s", len(pages), spaceID, strings.Join(entries, "\n"))
	if next != "" {
		out += fmt.Sprintf("\n\n*More results available - use cursor: %s*", next)
	}
	return out
}

// ChildPages renders a page's direct children.
func (r *Renderer) ChildPages(pages []normalize.Page, links Linker) string {
	entries := make([]string, len(pages))
	for i, p := range pages {
		entries[i] = fmt.Sprintf("**%s**\nID: %s | Version: %d\nURL: %s\n---",
			p.Title, p.ID, p.Version, links.WebURL(p.WebUI))
	}
	return fmt.Sprintf("Found %d child pages:\n\n%s", len(pages), strings.Join(entries, "\n"))
}
