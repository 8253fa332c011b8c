package client

import (
	"context"
	"fmt"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// PaymentsClient implements vendo.PaymentsClient.
type PaymentsClient struct {
	httpClient *http.Client
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(httpClient *http.Client) *PaymentsClient {
	return &PaymentsClient{httpClient: httpClient}
}

// Get implements vendo.PaymentsClient.Get.
func (c *PaymentsClient) Get(ctx context.Context, id string) vendo.Result[*vendo.Payment] {
	mustID("payment id", id)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/payments/%s", id), nil)

	return decode[vendo.Payment](resp, err, "getting payment")
}

// List implements vendo.PaymentsClient.List.
func (c *PaymentsClient) List(ctx context.Context, page, limit int, query *vendo.Query) vendo.Result[*vendo.Page[vendo.Payment]] {
	return listPage[vendo.Payment](ctx, c.httpClient, "/v1/payments", page, limit, query, "listing payments")
}

// All implements vendo.PaymentsClient.All.
func (c *PaymentsClient) All(ctx context.Context, query *vendo.Query) *vendo.PageIterator[vendo.Payment] {
	return vendo.NewPageIterator[vendo.Payment](ctx, c, query, vendo.DefaultPageSize)
}
