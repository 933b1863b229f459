package digest

import (
	"fmt"
	"strings"

	"github.com/steveyegge/digest/internal/normalize"
)

// ProductList renders every product with its description.
func (r *Renderer) ProductList(products []normalize.Product) string {
	entries := make([]string, len(products))
	for i, p := range products {
		entries[i] = fmt.Sprintf("**%s**\n%s\n---", heading(p.Prefix, p.Name), p.Description)
	}
	return fmt.Sprintf("Found %d products:\n\n%s", len(products), strings.Join(entries, "\n"))
}

// ProductDetails renders one product with its record counts.
func (r *Renderer) ProductDetails(p normalize.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n**%s**\n\n", heading(p.Prefix, p.Name))
	fmt.Fprintf(&b, "**Description:**\n%s\n\n", p.Description)
	b.WriteString("**Details:**\n")
	fmt.Fprintf(&b, "- Created: %s\n", r.date(p.Created))
	fmt.Fprintf(&b, "- Product Line: %s\n", p.ProductLine)
	fmt.Fprintf(&b, "- Workflow Status: %s\n\n", p.Status)
	fmt.Fprintf(&b, "**Initiatives:** %d\n", p.InitiativesCount)
	// two trailing spaces force a markdown line break
	fmt.Fprintf(&b, "**Features:** %d  \n", p.FeaturesCount)
	fmt.Fprintf(&b, "**Ideas:** %d\n", p.IdeasCount)
	return b.String()
}
