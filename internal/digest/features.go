package digest

import (
	"fmt"
	"strings"

	"github.com/steveyegge/digest/internal/enrich"
	"github.com/steveyegge/digest/internal/normalize"
)

func byStatus(f normalize.Feature) string  { return f.Status }
func byRelease(f normalize.Feature) string { return f.Release }
func scheduled(f normalize.Feature) bool   { return f.Scheduled }

// FeatureList renders a page of features with status, release and assignment.
func (r *Renderer) FeatureList(features []normalize.Feature) string {
	entries := make([]string, len(features))
	for i, f := range features {
		entries[i] = fmt.Sprintf("\n**%s**\nStatus: %s | Release: %s | Progress: %s\nAssigned: %s | Tags: %s\nCreated: %s\n---",
			heading(f.Reference, f.Name), f.Status, f.Release, f.Progress, f.Assignee, f.Tags, r.date(f.Created))
	}
	return fmt.Sprintf("Found %d features:\n\n%s\n\nTotal features in response: %d",
		len(features), strings.Join(entries, "\n"), len(features))
}

// FeatureDetails renders one feature. linked is shown when the feature
// references an initiative and showLinked is set; the "Initiative Details"
// section appears only when enrichment produced a value.
func (r *Renderer) FeatureDetails(f normalize.Feature, showLinked bool, details enrich.Result[normalize.Initiative]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n**%s**\n\n", heading(f.Reference, f.Name))
	fmt.Fprintf(&b, "**Description:**\n%s\n\n", f.Description)
	fmt.Fprintf(&b, "**Status & Progress:**\n- Workflow Status: %s\n- Progress: %s\n- Score: %s\n\n",
		f.DetailStatus(), f.Progress, f.Score)
	fmt.Fprintf(&b, "**Scheduling:**\n- Release: %s\n- Created: %s\n- Created By: %s\n\n",
		f.ReleaseState(), r.date(f.Created), f.CreatedBy)
	fmt.Fprintf(&b, "**Assignment:**\n- Assigned To: %s\n- Tags: %s\n", f.Assignee, f.Tags)

	if showLinked && f.Initiative != nil {
		b.WriteString("\n**Linked Initiative (Launch):**\n")
		fmt.Fprintf(&b, "- %s\n", heading(f.Initiative.Reference, f.Initiative.Name))
		fmt.Fprintf(&b, "- Status: %s\n", f.Initiative.Status)

		if details.Present() {
			in := details.Value
			b.WriteString("\n**Initiative Details:**\n")
			fmt.Fprintf(&b, "- Progress: %s\n", in.Progress)
			fmt.Fprintf(&b, "- Features: %d\n", in.FeaturesCount)
			if in.Owner != "" {
				fmt.Fprintf(&b, "- Owner: %s\n", in.Owner)
			}
		}
	}

	fmt.Fprintf(&b, "\n**URL:** %s\n", f.URL)
	return b.String()
}

// FeatureSearch renders search hits as reference/name lines.
func (r *Renderer) FeatureSearch(query string, features []normalize.Feature) string {
	entries := make([]string, len(features))
	for i, f := range features {
		entries[i] = fmt.Sprintf("%s\n  Status: %s | Release: %s", heading(f.Reference, f.Name), f.Status, f.Release)
	}
	return fmt.Sprintf("Found %d features matching \"%s\":\n\n%s", len(features), query, strings.Join(entries, "\n\n"))
}

// RoadmapAnalysis renders the status breakdown, release breakdown and
// initiative list for one product as adjacent sections.
func (r *Renderer) RoadmapAnalysis(productID string, features []normalize.Feature, initiatives []normalize.Initiative, includeUnscheduled bool) string {
	statuses := GroupBy(features, byStatus)
	releases := GroupBy(features, byRelease)
	if !includeUnscheduled {
		// by key: a release with no name also lands in this bucket
		releases = releases.Without(normalize.Unscheduled)
	}

	nScheduled := Count(features, scheduled)

	var b strings.Builder
	fmt.Fprintf(&b, "\n**Roadmap Analysis for Product %s**\n\n", productID)
	b.WriteString("**Summary:**\n")
	fmt.Fprintf(&b, "- Total Features: %d\n", len(features))
	fmt.Fprintf(&b, "- Total Initiatives: %d\n", len(initiatives))
	fmt.Fprintf(&b, "- Scheduled Features: %d\n", nScheduled)
	fmt.Fprintf(&b, "- Unscheduled Features: %d\n", len(features)-nScheduled)

	b.WriteString("\n**Features by Status:**\n")
	for _, g := range statuses.All() {
		fmt.Fprintf(&b, "\n**%s:** %d features\n", g.Key, len(g.Items))
		writeCapped(&b, g.Items, StatusGroupCap, featureBullet)
	}

	b.WriteString("\n**Features by Release:**\n")
	for _, g := range releases.All() {
		fmt.Fprintf(&b, "\n**%s:** %d features\n", g.Key, len(g.Items))
		writeCapped(&b, g.Items, ReleaseGroupCap, featureBullet)
	}

	if len(initiatives) > 0 {
		b.WriteString("\n**Active Initiatives:**\n")
		shown, more := Head(initiatives, InitiativeCap)
		for _, in := range shown {
			fmt.Fprintf(&b, "- %s (%d features)\n", heading(in.Reference, in.Name), in.FeaturesCount)
		}
		if more > 0 {
			fmt.Fprintf(&b, "%s\n", More(more))
		}
	}
	return b.String()
}

func featureBullet(f normalize.Feature) string {
	return fmt.Sprintf("  - %s\n", heading(f.Reference, f.Name))
}

// FeaturesByRelease renders every feature grouped by release. Features in a
// released release are dropped unless includeReleased is set.
func (r *Renderer) FeaturesByRelease(productID string, features []normalize.Feature, includeReleased bool) string {
	if !includeReleased {
		features = Filter(features, func(f normalize.Feature) bool { return !f.Released })
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Features by Release for %s**\n\n", productID)
	for _, g := range GroupBy(features, byRelease).All() {
		fmt.Fprintf(&b, "\n**%s** (%d features)\n", g.Key, len(g.Items))
		writeCapped(&b, g.Items, Uncapped, func(f normalize.Feature) string {
			return fmt.Sprintf("  %s\n    Status: %s | Progress: %s\n", heading(f.Reference, f.Name), f.Status, f.Progress)
		})
	}
	return b.String()
}

// InitiativeDetails renders one initiative with goals and releases.
func (r *Renderer) InitiativeDetails(in normalize.Initiative) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n**%s**\n\n", heading(in.Reference, in.Name))
	fmt.Fprintf(&b, "**Description:**\n%s\n\n", in.Description)
	fmt.Fprintf(&b, "**Status & Progress:**\n- Workflow Status: %s\n- Progress: %s\n- Features Count: %d\n\n",
		in.Status, in.Progress, in.FeaturesCount)
	fmt.Fprintf(&b, "**Alignment:**\n- Goals: %s\n- Created: %s\n\n", in.Goals, r.date(in.Created))
	fmt.Fprintf(&b, "**Assignment:**\n- Assigned To: %s\n- Tags: %s\n", in.Assignee, in.Tags)

	if len(in.Releases) > 0 {
		b.WriteString("\n**Associated Releases:**\n")
		for _, name := range in.Releases {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}
	return b.String()
}

// InitiativeFeatures renders an initiative's features grouped by status,
// uncapped.
func (r *Renderer) InitiativeFeatures(initiativeID string, features []normalize.Feature) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Features in Initiative %s** (%d total)\n\n", initiativeID, len(features))
	for _, g := range GroupBy(features, byStatus).All() {
		fmt.Fprintf(&b, "\n**%s** (%d features)\n", g.Key, len(g.Items))
		writeCapped(&b, g.Items, Uncapped, func(f normalize.Feature) string {
			return fmt.Sprintf("  %s\n    Release: %s | Progress: %s | Assigned: %s\n",
				heading(f.Reference, f.Name), f.Release, f.Progress, f.Assignee)
		})
	}
	return b.String()
}

// ProductFeatures renders the compact per-product feature list.
func (r *Renderer) ProductFeatures(productID string, features []normalize.Feature) string {
	entries := make([]string, len(features))
	for i, f := range features {
		entries[i] = fmt.Sprintf("**%s**\nStatus: %s | Release: %s\n---", heading(f.Reference, f.Name), f.DetailStatus(), f.Release)
	}
	return fmt.Sprintf("Found %d features for %s:\n\n%s", len(features), productID, strings.Join(entries, "\n"))
}
