package client

import (
	"context"
	"fmt"
	"io"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// OrdersClient implements vendo.OrdersClient. Orders are read-only: the
// platform creates them when a checkout succeeds.
type OrdersClient struct {
	httpClient *http.Client
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(httpClient *http.Client) *OrdersClient {
	return &OrdersClient{httpClient: httpClient}
}

// Get implements vendo.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id string) vendo.Result[*vendo.Order] {
	mustID("order id", id)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/orders/%s", id), nil)

	return decode[vendo.Order](resp, err, "getting order")
}

// List implements vendo.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, page, limit int, query *vendo.Query) vendo.Result[*vendo.Page[vendo.Order]] {
	return listPage[vendo.Order](ctx, c.httpClient, "/v1/orders", page, limit, query, "listing orders")
}

// All implements vendo.OrdersClient.All.
func (c *OrdersClient) All(ctx context.Context, query *vendo.Query) *vendo.PageIterator[vendo.Order] {
	return vendo.NewPageIterator[vendo.Order](ctx, c, query, vendo.DefaultPageSize)
}

// ExportYAML implements vendo.OrdersClient.ExportYAML.
func (c *OrdersClient) ExportYAML(ctx context.Context, w io.Writer, query *vendo.Query) vendo.Result[int] {
	return exportYAML(c.All(ctx, query), w)
}
