package client

import (
	"context"
	"fmt"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// MetersClient implements vendo.MetersClient.
type MetersClient struct {
	httpClient *http.Client
}

// NewMetersClient creates a new meters client.
func NewMetersClient(httpClient *http.Client) *MetersClient {
	return &MetersClient{httpClient: httpClient}
}

// Create implements vendo.MetersClient.Create.
func (c *MetersClient) Create(ctx context.Context, request *vendo.MeterCreate) vendo.Result[*vendo.Meter] {
	resp, err := c.httpClient.Post(ctx, "/v1/meters", request)

	return decode[vendo.Meter](resp, err, "creating meter")
}

// Get implements vendo.MetersClient.Get.
func (c *MetersClient) Get(ctx context.Context, id string) vendo.Result[*vendo.Meter] {
	mustID("meter id", id)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/meters/%s", id), nil)

	return decode[vendo.Meter](resp, err, "getting meter")
}

// List implements vendo.MetersClient.List.
func (c *MetersClient) List(ctx context.Context, page, limit int, query *vendo.Query) vendo.Result[*vendo.Page[vendo.Meter]] {
	return listPage[vendo.Meter](ctx, c.httpClient, "/v1/meters", page, limit, query, "listing meters")
}

// All implements vendo.MetersClient.All.
func (c *MetersClient) All(ctx context.Context, query *vendo.Query) *vendo.PageIterator[vendo.Meter] {
	return vendo.NewPageIterator[vendo.Meter](ctx, c, query, vendo.DefaultPageSize)
}

// Update implements vendo.MetersClient.Update.
func (c *MetersClient) Update(ctx context.Context, id string, request *vendo.MeterUpdate) vendo.Result[*vendo.Meter] {
	mustID("meter id", id)

	resp, err := c.httpClient.Patch(ctx, fmt.Sprintf("/v1/meters/%s", id), request)

	return decode[vendo.Meter](resp, err, "updating meter")
}
