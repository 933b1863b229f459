package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/steveyegge/digest/internal/confluence"
	"github.com/steveyegge/digest/internal/digest"
	"github.com/steveyegge/digest/internal/normalize"
	"github.com/steveyegge/digest/internal/paging"
)

func init() {
	Register(&Operation{
		Name:        "confluence-page.get_page",
		Description: "Get a page by ID with metadata and a content preview",
		Doing:       "fetching page",
		Params: []Param{
			{Name: "page_id", Kind: KindString, Required: true, Description: "Numeric page ID"},
			{Name: "include_body", Kind: KindBool, Default: true, Description: "Include page body content"},
			{Name: "plain_text", Kind: KindBool, Default: false, Description: "Reduce the body to plain text"},
		},
		Run: getPage,
	})
	Register(&Operation{
		Name:        "confluence-page.search_pages",
		Description: "Search pages by title",
		Doing:       "searching pages",
		Params: []Param{
			{Name: "query", Kind: KindString, Required: true, Description: "Title text to search for"},
			{Name: "space_id", Kind: KindString, Description: "Limit search to one space"},
			{Name: "limit", Kind: KindInt, Default: paging.ConfluenceSearchDefaultLimit, Description: "Number of results (max 25)"},
		},
		Run: searchPages,
	})
	Register(&Operation{
		Name:        "confluence-page.list_pages_in_space",
		Description: "List pages in a space, one cursor page at a time",
		Doing:       "listing pages",
		Params: []Param{
			{Name: "space_id", Kind: KindString, Required: true, Description: "Space ID"},
			{Name: "limit", Kind: KindInt, Default: paging.ConfluenceDefaultLimit, Description: "Number of pages (max 250)"},
			{Name: "cursor", Kind: KindString, Description: "Cursor from a previous listing"},
		},
		Run: listPagesInSpace,
	})
	Register(&Operation{
		Name:        "confluence-page.get_page_children",
		Description: "List the direct child pages of a page",
		Doing:       "fetching child pages",
		Params: []Param{
			{Name: "page_id", Kind: KindString, Required: true, Description: "Parent page ID"},
			{Name: "limit", Kind: KindInt, Default: paging.ConfluenceDefaultLimit, Description: "Number of child pages (max 250)"},
		},
		Run: pageChildren,
	})
}

func limit(requested, def, max int) url.Values {
	return url.Values{"limit": {strconv.Itoa(paging.Size(requested, def, max))}}
}

func getPage(ctx context.Context, args Args) (string, error) {
	client, err := confluence.FromEnv()
	if err != nil {
		return "", err
	}

	id := args.String("page_id")
	includeBody := args.Bool("include_body")
	raw, err := client.Page(ctx, id, includeBody)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return digest.NotFound("Page", id), nil
	}
	page := normalize.NewPage(*raw, args.Bool("plain_text"))
	return renderer().Page(page, client, includeBody), nil
}

func searchPages(ctx context.Context, args Args) (string, error) {
	client, err := confluence.FromEnv()
	if err != nil {
		return "", err
	}

	query := args.String("query")
	params := limit(args.Int("limit"), paging.ConfluenceSearchDefaultLimit, paging.ConfluenceSearchMaxLimit)
	params.Set("title", query)
	if space := args.String("space_id"); space != "" {
		params.Set("space-id", space)
	}

	list, err := client.Pages(ctx, params)
	if err != nil {
		return "", err
	}
	if len(list.Results) == 0 {
		return digest.NoneMatching("pages", query), nil
	}
	return renderer().PageSearch(query, normalize.Pages(list.Results), client), nil
}

func listPagesInSpace(ctx context.Context, args Args) (string, error) {
	client, err := confluence.FromEnv()
	if err != nil {
		return "", err
	}

	spaceID := args.String("space_id")
	params := limit(args.Int("limit"), paging.ConfluenceDefaultLimit, paging.ConfluenceListMaxLimit)
	params.Set("space-id", spaceID)
	paging.Cursor(args.String("cursor")).Apply(params)

	list, err := client.Pages(ctx, params)
	if err != nil {
		return "", err
	}
	if len(list.Results) == 0 {
		return digest.NoneIn("pages", "space "+spaceID), nil
	}
	return renderer().SpacePages(spaceID, normalize.Pages(list.Results), paging.NextCursor(list.Links.Next)), nil
}

func pageChildren(ctx context.Context, args Args) (string, error) {
	client, err := confluence.FromEnv()
	if err != nil {
		return "", err
	}

	id := args.String("page_id")
	params := limit(args.Int("limit"), paging.ConfluenceDefaultLimit, paging.ConfluenceListMaxLimit)
	list, err := client.Children(ctx, id, params)
	if err != nil {
		return "", err
	}
	if len(list.Results) == 0 {
		return fmt.Sprintf("Page %s has no child pages.", id), nil
	}
	return renderer().ChildPages(normalize.Pages(list.Results), client), nil
}
