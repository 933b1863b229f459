package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steveyegge/digest/internal/aha"
	"github.com/steveyegge/digest/internal/confluence"
)

func ptr[T any](v T) *T { return &v }

func TestNewFeatureDefaults(t *testing.T) {
	f := NewFeature(aha.Feature{ReferenceNum: "PROD-1", Name: "Bare"})

	assert.Equal(t, NoStatus, f.Status)
	assert.False(t, f.StatusKnown)
	assert.Equal(t, UnknownStatus, f.DetailStatus())
	assert.Equal(t, Unscheduled, f.Release)
	assert.False(t, f.Scheduled)
	assert.Equal(t, Unscheduled, f.ReleaseState())
	assert.Equal(t, Unassigned, f.Assignee)
	assert.Equal(t, None, f.Tags)
	assert.Equal(t, NotAvailable, f.Progress)
	assert.Equal(t, "0", f.Score)
	assert.Equal(t, UnknownUser, f.CreatedBy)
	assert.Equal(t, NoDescription, f.Description)
	assert.Equal(t, NotAvailable, f.URL)
	assert.True(t, f.Created.IsZero())
	assert.Nil(t, f.Initiative)
}

func TestNewFeaturePopulated(t *testing.T) {
	f := NewFeature(aha.Feature{
		ReferenceNum:   "PROD-2",
		Name:           "Export",
		Description:    &aha.Text{Body: "<p>CSV &amp; PDF</p>"},
		WorkflowStatus: &aha.WorkflowStatus{Name: "In Review"},
		Release:        &aha.Release{Name: "Q3", Released: true},
		AssignedTo:     &aha.User{Name: "Ana"},
		Tags:           []string{"billing", "export"},
		Progress:       ptr(40.0),
		Score:          ptr(12.5),
		CreatedAt:      "2024-03-05T10:00:00.000Z",
		Initiative:     &aha.InitiativeRef{ID: "i1", ReferenceNum: "PROD-I-1", Name: "Launch"},
	})

	assert.Equal(t, "In Review", f.Status)
	assert.Equal(t, "In Review", f.DetailStatus())
	assert.Equal(t, "Q3 (Released)", f.ReleaseState())
	assert.Equal(t, "billing, export", f.Tags)
	assert.Equal(t, "40%", f.Progress)
	assert.Equal(t, "12.5", f.Score)
	assert.Equal(t, "CSV & PDF", f.Description)
	assert.Equal(t, "3/5/2024", FormatDate(f.Created, ""))
	require.NotNil(t, f.Initiative)
	assert.Equal(t, UnknownStatus, f.Initiative.Status)
}

func TestNewInitiative(t *testing.T) {
	in := NewInitiative(aha.Initiative{
		ReferenceNum: "PROD-I-1",
		Name:         "Launch",
		Goals:        []aha.NamedRef{{Name: "Grow"}, {Name: "Retain"}},
		Releases:     []aha.NamedRef{{Name: "Q3"}},
	})
	assert.Equal(t, UnknownStatus, in.Status)
	assert.Equal(t, "Grow, Retain", in.Goals)
	assert.Equal(t, []string{"Q3"}, in.Releases)
	assert.Equal(t, 0, in.FeaturesCount)
	assert.Equal(t, Unassigned, in.Assignee)
	assert.Empty(t, in.Owner)

	empty := NewInitiative(aha.Initiative{})
	assert.Equal(t, None, empty.Goals)
	assert.Empty(t, empty.Releases)
}

func TestNewIdeaAndProduct(t *testing.T) {
	idea := NewIdea(aha.Idea{ReferenceNum: "IDEA-1", Categories: []aha.NamedRef{{Name: "UI"}}, VotesCount: ptr(4)})
	assert.Equal(t, "UI", idea.Categories)
	assert.Equal(t, None, idea.Tags)
	assert.Equal(t, "0", idea.Score)
	assert.Equal(t, 4, idea.Votes)
	assert.False(t, idea.HasDescription)

	p := NewProduct(aha.Product{ReferencePrefix: "PROD", Name: "Platform"})
	assert.Equal(t, NoProductLine, p.ProductLine)
	assert.Equal(t, UnknownStatus, p.Status)
	assert.Equal(t, NoDescription, p.Description)
}

func TestOrganizationsFirstSeenOrder(t *testing.T) {
	acme := &aha.OrganizationRef{ID: "o1", ReferenceNum: "ORG-1", Name: "Acme", CustomFields: aha.FieldMap{"arr": 1000.0, "TIER": "Gold"}}
	globex := &aha.OrganizationRef{ID: "o2", ReferenceNum: "ORG-2", Name: "Globex"}
	users := []aha.PortalUser{
		{ID: "u1", Organization: globex},
		{ID: "u2", Organization: acme},
		{ID: "u3"},
		{ID: "u4", Organization: globex},
		{ID: "u5", Organization: globex},
	}

	orgs := Organizations(users)
	require.Len(t, orgs, 2)
	assert.Equal(t, "Globex", orgs[0].Name)
	assert.Equal(t, 3, orgs[0].UserCount)
	assert.Equal(t, "Acme", orgs[1].Name)
	assert.Equal(t, 1, orgs[1].UserCount)

	assert.Equal(t, "$1000", orgs[1].ARR())
	assert.Equal(t, "Gold", orgs[1].Tier())
	assert.Equal(t, NotAvailable, orgs[0].ARR())
	assert.Equal(t, NotAvailable, orgs[0].Tier())
}

func TestLookupFieldPrefersExactKey(t *testing.T) {
	fields := aha.FieldMap{"arr": "lower", "ARR": "upper"}
	assert.Equal(t, "upper", LookupField(fields, "ARR"))
	assert.Equal(t, "lower", LookupField(fields, "arr"))
	assert.Nil(t, LookupField(fields, "tier"))
	assert.Nil(t, LookupField(nil, "ARR"))
}

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  just text ", "just text"},
		{"paragraphs", "<p>One</p><p>Two</p>", "One\n\nTwo"},
		{"entities", "<p>A &amp; B</p>", "A & B"},
		{"list", "<ul><li>a</li><li>b</li></ul>", "- a\n- b"},
		{"script dropped", "<p>x</p><script>alert(1)</script>", "x"},
		{"whitespace", "<div>a\n   b</div>", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTMLToText(tt.in))
		})
	}
}

func TestADFToText(t *testing.T) {
	doc := `{"type":"doc","content":[
		{"type":"paragraph","content":[{"type":"text","text":"Hello "},{"type":"text","text":"world"}]},
		{"type":"paragraph","content":[{"type":"text","text":"Second"}]}
	]}`
	assert.Equal(t, "Hello world\nSecond", ADFToText(doc))
	assert.Equal(t, "not adf", ADFToText("not adf"))
}

func TestNewPage(t *testing.T) {
	p := confluence.Page{
		ID: "1", Title: "Runbook", Status: "current", SpaceID: "42",
		CreatedAt: "2024-01-15T09:30:00.000Z",
		Version:   &confluence.Version{Number: 3, CreatedAt: "2024-02-01T12:00:00.000Z"},
		Body:      &confluence.Body{Storage: &confluence.Representation{Value: "<p>Hi</p>"}},
		Links:     confluence.Links{WebUI: "/spaces/X/pages/1"},
	}

	raw := NewPage(p, false)
	assert.Equal(t, "<p>Hi</p>", raw.Content)
	assert.True(t, raw.HasBody)
	assert.Equal(t, 3, raw.Version)
	assert.Equal(t, "2/1/2024", FormatDate(raw.Modified, DefaultDateLayout))

	plain := NewPage(p, true)
	assert.Equal(t, "Hi", plain.Content)

	p.Body = &confluence.Body{}
	assert.Equal(t, NoContent, NewPage(p, false).Content)

	p.Body = nil
	p.Version = nil
	bare := NewPage(p, false)
	assert.False(t, bare.HasBody)
	assert.Equal(t, NotAvailable, FormatDate(bare.Modified, DefaultDateLayout))
}

func TestFormattingHelpers(t *testing.T) {
	assert.Equal(t, None, JoinList(nil))
	assert.Equal(t, None, JoinList([]string{"", " "}))
	assert.Equal(t, "N/A", Percent(nil))
	assert.Equal(t, "100%", Percent(ptr(100.0)))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab...", Truncate("abc", 2))
	assert.Equal(t, "2024-03-05", FormatDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "2006-01-02"))
	assert.True(t, ParseTimestamp("garbage").IsZero())
	assert.Equal(t, 2024, ParseTimestamp("2024-06-30").Year())
}

func TestNewPageInfo(t *testing.T) {
	assert.False(t, NewPageInfo(nil).HasNext())

	p := NewPageInfo(&aha.Pagination{TotalRecords: 57, TotalPages: 3, CurrentPage: 1})
	assert.Equal(t, PageInfo{Current: 1, TotalPages: 3, TotalRecords: 57}, p)
	assert.True(t, p.HasNext())

	assert.False(t, NewPageInfo(&aha.Pagination{TotalRecords: 57, TotalPages: 3, CurrentPage: 3}).HasNext())
}
