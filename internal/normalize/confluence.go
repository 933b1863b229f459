package normalize

import (
	"time"

	"github.com/steveyegge/digest/internal/confluence"
)

// Page is a Confluence page with every field defaulted.
type Page struct {
	ID       string
	Title    string
	Status   string
	SpaceID  string
	Created  time.Time
	Modified time.Time
	Version  int
	WebUI    string
	// Content is the page body in the first available representation,
	// storage preferred. HasBody is false when the page was fetched without one.
	Content string
	HasBody bool
}

// NewPage normalizes a wire page. With plainText set the body is reduced to
// plain text (storage HTML or ADF).
func NewPage(p confluence.Page, plainText bool) Page {
	out := Page{
		ID:      p.ID,
		Title:   p.Title,
		Status:  p.Status,
		SpaceID: p.SpaceID,
		Created: ParseTimestamp(p.CreatedAt),
		WebUI:   p.Links.WebUI,
	}
	if p.Version != nil {
		out.Version = p.Version.Number
		out.Modified = ParseTimestamp(p.Version.CreatedAt)
	}
	if p.Body != nil {
		out.HasBody = true
		out.Content = pageContent(p.Body, plainText)
	}
	return out
}

// Pages normalizes a slice of wire pages without bodies.
func Pages(in []confluence.Page) []Page {
	out := make([]Page, len(in))
	for i, p := range in {
		out[i] = NewPage(p, false)
	}
	return out
}

func pageContent(body *confluence.Body, plainText bool) string {
	switch {
	case body.Storage != nil && body.Storage.Value != "":
		if plainText {
			return orDefault(HTMLToText(body.Storage.Value), NoContent)
		}
		return body.Storage.Value
	case body.AtlasDocFormat != nil && body.AtlasDocFormat.Value != "":
		if plainText {
			return orDefault(ADFToText(body.AtlasDocFormat.Value), NoContent)
		}
		return body.AtlasDocFormat.Value
	default:
		return NoContent
	}
}
