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
		Name:        "aha-products.list",
		Description: "List all products",
		Doing:       "fetching products",
		Run:         listProducts,
	})
	Register(&Operation{
		Name:        "aha-products.get_details",
		Description: "Get one product with its initiative, feature and idea counts",
		Doing:       "fetching product details",
		Params: []Param{
			{Name: "product_id", Kind: KindString, Required: true, Description: "Product ID or reference prefix"},
		},
		Run: productDetails,
	})
	Register(&Operation{
		Name:        "aha-products.list_features",
		Description: "List features for one product",
		Doing:       "fetching features",
		Params: []Param{
			{Name: "product_id", Kind: KindString, Required: true, Description: "Product ID or reference prefix"},
			pageParam,
			perPage,
		},
		Run: productFeatures,
	})
}

func listProducts(ctx context.Context, _ Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	raw, err := client.Products(ctx)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return digest.NoneIn("products", "Aha!"), nil
	}
	return renderer().ProductList(normalize.Products(raw)), nil
}

func productDetails(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	id := args.String("product_id")
	raw, err := client.Product(ctx, id)
	if err != nil {
		return "", err
	}
	if raw == nil {
		return digest.NotFound("Product", id), nil
	}
	return renderer().ProductDetails(normalize.NewProduct(*raw)), nil
}

func productFeatures(ctx context.Context, args Args) (string, error) {
	client, err := aha.FromEnv()
	if err != nil {
		return "", err
	}

	productID := args.String("product_id")
	raw, pg, err := client.Features(ctx, aha.FeatureScope{ProductID: productID}, offset(args).Values(paging.AhaMaxPerPage))
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return digest.NoneFor("features", "product", productID), nil
	}
	return renderer().ProductFeatures(productID, normalize.Features(raw)) + digest.PageHint(normalize.NewPageInfo(pg)), nil
}
