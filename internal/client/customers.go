package client

import (
	"context"
	"fmt"
	"io"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// CustomersClient implements vendo.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{httpClient: httpClient}
}

// Create implements vendo.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *vendo.CustomerCreate) vendo.Result[*vendo.Customer] {
	resp, err := c.httpClient.Post(ctx, "/v1/customers", request)

	return decode[vendo.Customer](resp, err, "creating customer")
}

// Get implements vendo.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string) vendo.Result[*vendo.Customer] {
	mustID("customer id", id)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/customers/%s", id), nil)

	return decode[vendo.Customer](resp, err, "getting customer")
}

// List implements vendo.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, page, limit int, query *vendo.Query) vendo.Result[*vendo.Page[vendo.Customer]] {
	return listPage[vendo.Customer](ctx, c.httpClient, "/v1/customers", page, limit, query, "listing customers")
}

// All implements vendo.CustomersClient.All.
func (c *CustomersClient) All(ctx context.Context, query *vendo.Query) *vendo.PageIterator[vendo.Customer] {
	return vendo.NewPageIterator[vendo.Customer](ctx, c, query, vendo.DefaultPageSize)
}

// Update implements vendo.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, request *vendo.CustomerUpdate) vendo.Result[*vendo.Customer] {
	mustID("customer id", id)

	resp, err := c.httpClient.Patch(ctx, fmt.Sprintf("/v1/customers/%s", id), request)

	return decode[vendo.Customer](resp, err, "updating customer")
}

// Delete implements vendo.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string) vendo.Result[vendo.Void] {
	mustID("customer id", id)

	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/v1/customers/%s", id))

	return deleted(err)
}

// ExportYAML implements vendo.CustomersClient.ExportYAML.
func (c *CustomersClient) ExportYAML(ctx context.Context, w io.Writer, query *vendo.Query) vendo.Result[int] {
	return exportYAML(c.All(ctx, query), w)
}
