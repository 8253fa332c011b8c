package client

import (
	"context"
	"fmt"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// ProductsClient implements vendo.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{httpClient: httpClient}
}

// Create implements vendo.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, request *vendo.ProductCreate) vendo.Result[*vendo.Product] {
	resp, err := c.httpClient.Post(ctx, "/v1/products", request)

	return decode[vendo.Product](resp, err, "creating product")
}

// Get implements vendo.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id string) vendo.Result[*vendo.Product] {
	mustID("product id", id)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/products/%s", id), nil)

	return decode[vendo.Product](resp, err, "getting product")
}

// List implements vendo.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, page, limit int, query *vendo.Query) vendo.Result[*vendo.Page[vendo.Product]] {
	return listPage[vendo.Product](ctx, c.httpClient, "/v1/products", page, limit, query, "listing products")
}

// All implements vendo.ProductsClient.All.
func (c *ProductsClient) All(ctx context.Context, query *vendo.Query) *vendo.PageIterator[vendo.Product] {
	return vendo.NewPageIterator[vendo.Product](ctx, c, query, vendo.DefaultPageSize)
}

// Update implements vendo.ProductsClient.Update.
func (c *ProductsClient) Update(ctx context.Context, id string, request *vendo.ProductUpdate) vendo.Result[*vendo.Product] {
	mustID("product id", id)

	resp, err := c.httpClient.Patch(ctx, fmt.Sprintf("/v1/products/%s", id), request)

	return decode[vendo.Product](resp, err, "updating product")
}
