package client

import (
	"context"
	"fmt"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// CheckoutsClient implements vendo.CheckoutsClient.
type CheckoutsClient struct {
	httpClient *http.Client
}

// NewCheckoutsClient creates a new checkouts client.
func NewCheckoutsClient(httpClient *http.Client) *CheckoutsClient {
	return &CheckoutsClient{httpClient: httpClient}
}

// Create implements vendo.CheckoutsClient.Create.
func (c *CheckoutsClient) Create(ctx context.Context, request *vendo.CheckoutCreate) vendo.Result[*vendo.Checkout] {
	resp, err := c.httpClient.Post(ctx, "/v1/checkouts", request)

	return decode[vendo.Checkout](resp, err, "creating checkout")
}

// Get implements vendo.CheckoutsClient.Get.
func (c *CheckoutsClient) Get(ctx context.Context, id string) vendo.Result[*vendo.Checkout] {
	mustID("checkout id", id)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/checkouts/%s", id), nil)

	return decode[vendo.Checkout](resp, err, "getting checkout")
}

// List implements vendo.CheckoutsClient.List.
func (c *CheckoutsClient) List(ctx context.Context, page, limit int, query *vendo.Query) vendo.Result[*vendo.Page[vendo.Checkout]] {
	return listPage[vendo.Checkout](ctx, c.httpClient, "/v1/checkouts", page, limit, query, "listing checkouts")
}

// All implements vendo.CheckoutsClient.All.
func (c *CheckoutsClient) All(ctx context.Context, query *vendo.Query) *vendo.PageIterator[vendo.Checkout] {
	return vendo.NewPageIterator[vendo.Checkout](ctx, c, query, vendo.DefaultPageSize)
}

// Update implements vendo.CheckoutsClient.Update.
func (c *CheckoutsClient) Update(ctx context.Context, id string, request *vendo.CheckoutUpdate) vendo.Result[*vendo.Checkout] {
	mustID("checkout id", id)

	resp, err := c.httpClient.Patch(ctx, fmt.Sprintf("/v1/checkouts/%s", id), request)

	return decode[vendo.Checkout](resp, err, "updating checkout")
}
