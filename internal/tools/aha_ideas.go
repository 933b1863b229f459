package tools

import (
	"context"

	"github.com/steveyegge/digest/internal/aha"
	"github.com/steveyegge/digest/internal/digest"
	"github.com/steveyegge/digest/internal/normalize"
	"github.com/steveyegge/digest/internal/paging"
)

func init() {
	Register(&Operation{
		Name:        "aha-ideas.list",
		Description: "List ideas (customer feature requests), optionally for one product",
		Doing:       "fetching ideas",
		Params: []Param{
			{Name: "product_id", Kind: KindString, Description: "Product ID or reference prefix"},
			pageParam,
			perPage,
		},
		Run: listIdeas,
	})
	Register(&Operation{
		Name:        "aha-ideas.search",
		Description: "Search ideas by keyword",
		Doing:       "searching ideas",
		Params: []Param{
			{Name: "query", Kind: KindString, Required: true, Description: "Text to search for"},
			{Name: "product_id", Kind: KindString, Description: "Limit search to one product"},
			perPage,
		},
		Run: searchIdeas,
	})
	Register(&Operation{
		Name:        "aha-ideas.get_details",
		Description: "Get one idea with votes, comments and status",
		Doing:       "fetching idea details",
		Params: []Param{
			{Name: "idea_id", Kind: KindString, Required: true, Description: "Idea ID or reference number"},
		},
		Run: ideaDetails,
	})
	Register(&Operation{
		Name:        "aha-ideas.list_organizations",
		Description: "List customer organizations with ARR, tier and portal user counts",
		Doing:       "fetching organizations",
		Params:      []Param{pageParam, perPage},
		Run:         listOrganizations,
	})
}

func listIdeas(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	productID := args.String("product_id")
	raw, pg, err := client.Ideas(ctx, productID, offset(args).Values(paging.AhaMaxPerPage))
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		if productID != "" {
			return digest.NoneFor("ideas", "product", productID), nil
		}
		return digest.NoneIn("ideas", "Aha!"), nil
	}
	return renderer().IdeaList(normalize.Ideas(raw)) + digest.PageHint(normalize.NewPageInfo(pg)), nil
}

func searchIdeas(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	query := args.String("query")
	params := paging.PerPageOnly(args.Int("per_page"), paging.AhaMaxPerPage)
	params.Set("q", query)

	raw, _, err := client.Ideas(ctx, args.String("product_id"), params)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return digest.NoneMatching("ideas", query), nil
	}
	return renderer().IdeaSearch(query, normalize.Ideas(raw)), nil
}

func ideaDetails(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	id := args.String("idea_id")
	raw, err := client.Idea(ctx, id)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return digest.NotFound("Idea", id), nil
	}
	return renderer().IdeaDetails(normalize.NewIdea(*raw)), nil
}

func listOrganizations(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	users, pg, err := client.PortalUsers(ctx, offset(args).Values(paging.AhaMaxPerPage))
	if err != nil {
		return "", err
	}
	orgs := normalize.Organizations(users)
	if len(orgs) == 0 {
		return digest.NoneIn("organizations", "Aha!"), nil
	}
	// pages count portal users, not organizations
	return renderer().OrganizationList(orgs) + digest.PageHint(normalize.NewPageInfo(pg)), nil
}
