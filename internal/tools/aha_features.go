package tools

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/steveyegge/digest/internal/aha"
	"github.com/steveyegge/digest/internal/digest"
	"github.com/steveyegge/digest/internal/enrich"
	"github.com/steveyegge/digest/internal/normalize"
	"github.com/steveyegge/digest/internal/paging"
	"github.com/steveyegge/digest/internal/timeparsing"
)

func init() {
	Register(&Operation{
		Name:        "aha-features.list",
		Description: "List features with optional filtering by product or release",
		Doing:       "fetching features",
		Params: []Param{
			{Name: "product_id", Kind: KindString, Description: "Product ID or reference prefix"},
			{Name: "release_id", Kind: KindString, Description: "Release ID"},
			pageParam,
			perPage,
			{Name: "created_since", Kind: KindString, Description: "Only features created since, e.g. -7d, \"last monday\", 2025-01-31"},
		},
		Run: listFeatures,
	})
	Register(&Operation{
		Name:        "aha-features.get_details",
		Description: "Get one feature with description, scheduling and linked initiative",
		Doing:       "fetching feature details",
		Params: []Param{
			{Name: "feature_id", Kind: KindString, Required: true, Description: "Feature ID or reference number"},
			{Name: "include_initiatives", Kind: KindBool, Default: true, Description: "Include linked initiative details"},
		},
		Run: featureDetails,
	})
	Register(&Operation{
		Name:        "aha-features.search",
		Description: "Search features by keyword",
		Doing:       "searching features",
		Params: []Param{
			{Name: "query", Kind: KindString, Required: true, Description: "Text to search for"},
			{Name: "product_id", Kind: KindString, Description: "Limit search to one product"},
			perPage,
		},
		Run: searchFeatures,
	})
	Register(&Operation{
		Name:        "aha-features.compare_with_initiatives",
		Description: "Summarize a product's features by status and release alongside its initiatives",
		Doing:       "comparing features",
		Params: []Param{
			{Name: "product_id", Kind: KindString, Required: true, Description: "Product ID or reference prefix"},
			{Name: "include_unscheduled", Kind: KindBool, Default: true, Description: "Include the Unscheduled release bucket"},
		},
		Run: compareWithInitiatives,
	})
	Register(&Operation{
		Name:        "aha-features.list_by_release",
		Description: "List a product's features grouped by release",
		Doing:       "listing features by release",
		Params: []Param{
			{Name: "product_id", Kind: KindString, Required: true, Description: "Product ID or reference prefix"},
			{Name: "include_released", Kind: KindBool, Default: false, Description: "Include features in released releases"},
		},
		Run: listByRelease,
	})
	Register(&Operation{
		Name:        "aha-features.get_initiative",
		Description: "Get one initiative with goals, progress and releases",
		Doing:       "fetching initiative details",
		Params: []Param{
			{Name: "initiative_id", Kind: KindString, Required: true, Description: "Initiative ID or reference number"},
		},
		Run: initiativeDetails,
	})
	Register(&Operation{
		Name:        "aha-features.list_features_by_initiative",
		Description: "List an initiative's features grouped by status",
		Doing:       "listing features for initiative",
		Params: []Param{
			{Name: "initiative_id", Kind: KindString, Required: true, Description: "Initiative ID or reference number"},
			pageParam,
			perPage,
		},
		Run: featuresByInitiative,
	})
}

// fullScan requests the largest page Aha! serves, for product-wide analysis.
func fullScan() url.Values {
	return paging.PerPageOnly(paging.AhaMaxPerPage, paging.AhaMaxPerPage)
}

func offset(args Args) paging.Offset {
	return paging.Offset{Page: args.Int("page"), PerPage: args.Int("per_page")}
}

func listFeatures(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	var since time.Time
	if expr := args.String("created_since"); expr != "" {
		since, err = timeparsing.Since(expr, time.Now())
		if err != nil {
			return "", fmt.Errorf("invalid created_since: %w", err)
		}
	}

	scope := aha.FeatureScope{ProductID: args.String("product_id"), ReleaseID: args.String("release_id")}
	raw, pg, err := client.Features(ctx, scope, offset(args).Values(paging.AhaMaxPerPage))
	if err != nil {
		return "", err
	}

	features := normalize.Features(raw)
	if !since.IsZero() {
		features = digest.Filter(features, func(f normalize.Feature) bool {
			return !f.Created.IsZero() && !f.Created.Before(since)
		})
	}

	if len(features) == 0 {
		switch {
		case scope.ReleaseID != "":
			return digest.NoneFor("features", "release", scope.ReleaseID), nil
		case scope.ProductID != "":
			return digest.NoneFor("features", "product", scope.ProductID), nil
		default:
			return digest.NoneIn("features", "Aha!"), nil
		}
	}
	return renderer().FeatureList(features) + digest.PageHint(normalize.NewPageInfo(pg)), nil
}

func featureDetails(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	id := args.String("feature_id")
	raw, err := client.Feature(ctx, id)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return digest.NotFound("Feature", id), nil
	}

	feature := normalize.NewFeature(*raw)
	showLinked := args.Bool("include_initiatives")

	var details enrich.Result[normalize.Initiative]
	if showLinked {
		details = enrich.Initiative(ctx, client, feature.Initiative)
	}
	return renderer().FeatureDetails(feature, showLinked, details), nil
}

func searchFeatures(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	query := args.String("query")
	params := paging.PerPageOnly(args.Int("per_page"), paging.AhaMaxPerPage)
	params.Set("q", query)

	raw, _, err := client.Features(ctx, aha.FeatureScope{ProductID: args.String("product_id")}, params)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return digest.NoneMatching("features", query), nil
	}
	return renderer().FeatureSearch(query, normalize.Features(raw)), nil
}

func compareWithInitiatives(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	productID := args.String("product_id")
	features, _, err := client.Features(ctx, aha.FeatureScope{ProductID: productID}, fullScan())
	if err != nil {
		return "", err
	}
	initiatives, err := client.ProductInitiatives(ctx, productID, fullScan())
	if err != nil {
		return "", err
	}

	if len(features) == 0 && len(initiatives) == 0 {
		return fmt.Sprintf("No features or initiatives found for product %s.", productID), nil
	}
	return renderer().RoadmapAnalysis(productID, normalize.Features(features), normalize.Initiatives(initiatives),
		args.Bool("include_unscheduled")), nil
}

func listByRelease(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	productID := args.String("product_id")
	raw, _, err := client.Features(ctx, aha.FeatureScope{ProductID: productID}, fullScan())
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return digest.NoneFor("features", "product", productID), nil
	}
	return renderer().FeaturesByRelease(productID, normalize.Features(raw), args.Bool("include_released")), nil
}

func initiativeDetails(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	id := args.String("initiative_id")
	raw, err := client.Initiative(ctx, id)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return digest.NotFound("Initiative", id), nil
	}
	return renderer().InitiativeDetails(normalize.NewInitiative(*raw)), nil
}

func featuresByInitiative(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	id := args.String("initiative_id")
	raw, pg, err := client.Features(ctx, aha.FeatureScope{InitiativeID: id}, offset(args).Values(paging.AhaMaxPerPage))
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return digest.NoneFor("features", "initiative", id), nil
	}
	return renderer().InitiativeFeatures(id, normalize.Features(raw)) + digest.PageHint(normalize.NewPageInfo(pg)), nil
}
