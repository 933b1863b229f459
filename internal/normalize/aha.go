package normalize

import (
	"time"

	"github.com/steveyegge/digest/internal/aha"
)

// Feature is a roadmap feature with every field defaulted.
type Feature struct {
	ID          string
	Reference   string
	Name        string
	Description string
	// Status is the workflow status name, or "No status".
	Status      string
	StatusKnown bool
	// Release is the release name, or "Unscheduled".
	Release    string
	Scheduled  bool
	Released   bool
	Assignee   string
	Tags       string
	Progress   string
	Score      string
	Created    time.Time
	CreatedBy  string
	URL        string
	Initiative *LinkedInitiative
}

// DetailStatus is the status shown on single-feature views, where an absent
// status reads "Unknown" rather than "No status".
func (f Feature) DetailStatus() string {
	if f.StatusKnown {
		return f.Status
	}
	return UnknownStatus
}

// ReleaseState renders "<name> (Released|Planned)" or "Unscheduled".
func (f Feature) ReleaseState() string {
	if !f.Scheduled {
		return Unscheduled
	}
	if f.Released {
		return f.Release + " (Released)"
	}
	return f.Release + " (Planned)"
}

// LinkedInitiative is the initiative reference embedded in a feature.
type LinkedInitiative struct {
	ID        string
	Reference string
	Name      string
	Status    string
}

// NewFeature normalizes a wire feature.
func NewFeature(f aha.Feature) Feature {
	out := Feature{
		ID:          f.ID,
		Reference:   f.ReferenceNum,
		Name:        f.Name,
		Description: description(f.Description),
		Status:      NoStatus,
		Release:     Unscheduled,
		Assignee:    Unassigned,
		Tags:        JoinList(f.Tags),
		Progress:    Percent(f.Progress),
		Score:       numberOrZero(f.Score),
		Created:     ParseTimestamp(f.CreatedAt),
		CreatedBy:   UnknownUser,
		URL:         NotAvailable,
	}
	if f.WorkflowStatus != nil && f.WorkflowStatus.Name != "" {
		out.Status = f.WorkflowStatus.Name
		out.StatusKnown = true
	}
	if f.Release != nil {
		out.Scheduled = true
		out.Release = orDefault(f.Release.Name, Unscheduled)
		out.Released = f.Release.Released
	}
	if f.AssignedTo != nil {
		out.Assignee = orDefault(f.AssignedTo.Name, Unassigned)
	}
	if f.CreatedBy != nil {
		out.CreatedBy = orDefault(f.CreatedBy.Name, UnknownUser)
	}
	if f.URL != nil {
		out.URL = orDefault(*f.URL, NotAvailable)
	}
	if f.Initiative != nil {
		link := &LinkedInitiative{
			ID:        f.Initiative.ID,
			Reference: f.Initiative.ReferenceNum,
			Name:      f.Initiative.Name,
			Status:    UnknownStatus,
		}
		if f.Initiative.WorkflowStatus != nil {
			link.Status = orDefault(f.Initiative.WorkflowStatus.Name, UnknownStatus)
		}
		out.Initiative = link
	}
	return out
}

// Features normalizes a slice of wire features, preserving order.
func Features(in []aha.Feature) []Feature {
	out := make([]Feature, len(in))
	for i, f := range in {
		out[i] = NewFeature(f)
	}
	return out
}

// Initiative is a strategic initiative with every field defaulted.
type Initiative struct {
	ID            string
	Reference     string
	Name          string
	Description   string
	Status        string
	Progress      string
	FeaturesCount int
	Goals         string
	Releases      []string
	Created       time.Time
	Assignee      string
	// Owner is the assignee name, empty when nobody is assigned.
	Owner string
	Tags  string
}

// NewInitiative normalizes a wire initiative.
func NewInitiative(in aha.Initiative) Initiative {
	out := Initiative{
		ID:            in.ID,
		Reference:     in.ReferenceNum,
		Name:          in.Name,
		Description:   description(in.Description),
		Status:        UnknownStatus,
		Progress:      Percent(in.Progress),
		FeaturesCount: countOrZero(in.FeaturesCount),
		Goals:         JoinList(names(in.Goals)),
		Releases:      names(in.Releases),
		Created:       ParseTimestamp(in.CreatedAt),
		Assignee:      Unassigned,
		Tags:          JoinList(in.Tags),
	}
	if in.WorkflowStatus != nil {
		out.Status = orDefault(in.WorkflowStatus.Name, UnknownStatus)
	}
	if in.AssignedTo != nil && in.AssignedTo.Name != "" {
		out.Assignee = in.AssignedTo.Name
		out.Owner = in.AssignedTo.Name
	}
	return out
}

// Initiatives normalizes a slice of wire initiatives, preserving order.
func Initiatives(in []aha.Initiative) []Initiative {
	out := make([]Initiative, len(in))
	for i, v := range in {
		out[i] = NewInitiative(v)
	}
	return out
}

// Idea is a portal idea with every field defaulted.
type Idea struct {
	ID          string
	Reference   string
	Name        string
	Description string
	// HasDescription is false when Description holds the "No description" sentinel.
	HasDescription bool
	Promoted       bool
	Score          string
	Categories     string
	Tags           string
	Created        time.Time
	Status         string
	Votes          int
	Comments       int
	CreatedBy      string
}

// NewIdea normalizes a wire idea.
func NewIdea(in aha.Idea) Idea {
	out := Idea{
		ID:          in.ID,
		Reference:   in.ReferenceNum,
		Name:        in.Name,
		Description: description(in.Description),
		Promoted:    in.Promoted,
		Score:       numberOrZero(in.Score),
		Categories:  JoinList(names(in.Categories)),
		Tags:        JoinList(in.Tags),
		Created:     ParseTimestamp(in.CreatedAt),
		Status:      UnknownStatus,
		Votes:       countOrZero(in.VotesCount),
		Comments:    countOrZero(in.CommentsCount),
		CreatedBy:   UnknownUser,
	}
	out.HasDescription = out.Description != NoDescription
	if in.WorkflowStatus != nil {
		out.Status = orDefault(in.WorkflowStatus.Name, UnknownStatus)
	}
	if in.CreatedBy != nil {
		out.CreatedBy = orDefault(in.CreatedBy.Name, UnknownUser)
	}
	return out
}

// Ideas normalizes a slice of wire ideas, preserving order.
func Ideas(in []aha.Idea) []Idea {
	out := make([]Idea, len(in))
	for i, v := range in {
		out[i] = NewIdea(v)
	}
	return out
}

// Product is an Aha! product with every field defaulted.
type Product struct {
	ID               string
	Prefix           string
	Name             string
	Description      string
	Created          time.Time
	ProductLine      string
	Status           string
	InitiativesCount int
	FeaturesCount    int
	IdeasCount       int
}

// NewProduct normalizes a wire product.
func NewProduct(in aha.Product) Product {
	out := Product{
		ID:               in.ID,
		Prefix:           in.ReferencePrefix,
		Name:             in.Name,
		Description:      description(in.Description),
		Created:          ParseTimestamp(in.CreatedAt),
		ProductLine:      NoProductLine,
		Status:           UnknownStatus,
		InitiativesCount: countOrZero(in.InitiativesCount),
		FeaturesCount:    countOrZero(in.FeaturesCount),
		IdeasCount:       countOrZero(in.IdeasCount),
	}
	if in.ProductLine != nil {
		out.ProductLine = orDefault(in.ProductLine.Name, NoProductLine)
	}
	if in.WorkflowStatus != nil {
		out.Status = orDefault(in.WorkflowStatus.Name, UnknownStatus)
	}
	return out
}

// Products normalizes a slice of wire products, preserving order.
func Products(in []aha.Product) []Product {
	out := make([]Product, len(in))
	for i, v := range in {
		out[i] = NewProduct(v)
	}
	return out
}

func description(t *aha.Text) string {
	if t == nil {
		return NoDescription
	}
	return orDefault(HTMLToText(t.Body), NoDescription)
}

func names(refs []aha.NamedRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.Name != "" {
			out = append(out, r.Name)
		}
	}
	return out
}

// PageInfo is the position of one offset page within a listing.
type PageInfo struct {
	Current      int
	TotalPages   int
	TotalRecords int
}

// NewPageInfo reads an Aha! pagination block. A missing block yields the
// zero PageInfo, which reports no further pages.
func NewPageInfo(p *aha.Pagination) PageInfo {
	if p == nil {
		return PageInfo{}
	}
	return PageInfo{Current: p.CurrentPage, TotalPages: p.TotalPages, TotalRecords: p.TotalRecords}
}

// HasNext reports whether pages remain after the current one.
func (p PageInfo) HasNext() bool {
	return p.Current > 0 && p.Current < p.TotalPages
}
