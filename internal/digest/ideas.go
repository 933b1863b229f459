package digest

import (
	"fmt"
	"strings"

	"github.com/steveyegge/digest/internal/normalize"
)

const (
	promotedBadge   = "⭐ PROMOTED"
	promotedFeature = "⭐ PROMOTED TO FEATURE"
)

// IdeaList renders a page of ideas with a description preview.
func (r *Renderer) IdeaList(ideas []normalize.Idea) string {
	entries := make([]string, len(ideas))
	for i, idea := range ideas {
		title := "**" + heading(idea.Reference, idea.Name) + "**"
		if idea.Promoted {
			title += " " + promotedBadge
		}
		preview := idea.Description
		if idea.HasDescription {
			preview = normalize.Truncate(preview, IdeaPreviewLen)
		}
		entries[i] = fmt.Sprintf("\n%s\nScore: %s | Created: %s\nCategories: %s | Tags: %s\nDescription: %s\n---",
			title, idea.Score, r.date(idea.Created), idea.Categories, idea.Tags, preview)
	}
	return fmt.Sprintf("Found %d ideas:\n\n%s\n\nTotal ideas in response: %d",
		len(ideas), strings.Join(entries, "\n"), len(ideas))
}

// IdeaSearch renders search hits with their score.
func (r *Renderer) IdeaSearch(query string, ideas []normalize.Idea) string {
	entries := make([]string, len(ideas))
	for i, idea := range ideas {
		entries[i] = fmt.Sprintf("%s (Score: %s)", heading(idea.Reference, idea.Name), idea.Score)
	}
	return fmt.Sprintf("Found %d ideas matching \"%s\":\n\n%s", len(ideas), query, strings.Join(entries, "\n"))
}

// IdeaDetails renders one idea.
func (r *Renderer) IdeaDetails(idea normalize.Idea) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n**%s**\n", heading(idea.Reference, idea.Name))
	if idea.Promoted {
		b.WriteString(promotedFeature)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**Description:**\n%s\n\n", idea.Description)
	b.WriteString("**Details:**\n")
	fmt.Fprintf(&b, "- Score: %s\n", idea.Score)
	fmt.Fprintf(&b, "- Created: %s\n", r.date(idea.Created))
	fmt.Fprintf(&b, "- Categories: %s\n", idea.Categories)
	fmt.Fprintf(&b, "- Tags: %s\n", idea.Tags)
	fmt.Fprintf(&b, "- Status: %s\n", idea.Status)
	fmt.Fprintf(&b, "- Votes: %d\n", idea.Votes)
	fmt.Fprintf(&b, "- Comments: %d\n", idea.Comments)
	fmt.Fprintf(&b, "\n**Created by:** %s\n", idea.CreatedBy)
	return b.String()
}

// OrganizationList renders derived organizations with ARR, tier and user count.
func (r *Renderer) OrganizationList(orgs []normalize.Organization) string {
	entries := make([]string, len(orgs))
	for i, o := range orgs {
		entries[i] = fmt.Sprintf("**%s**\nARR: %s | Tier: %s | Users: %d\n---",
			heading(o.Reference, o.Name), o.ARR(), o.Tier(), o.UserCount)
	}
	return fmt.Sprintf("Found %d organizations:\n\n%s", len(orgs), strings.Join(entries, "\n"))
}
