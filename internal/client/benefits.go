package client

import (
	"context"
	"fmt"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// BenefitsClient implements vendo.BenefitsClient.
type BenefitsClient struct {
	httpClient *http.Client
}

// NewBenefitsClient creates a new benefits client.
func NewBenefitsClient(httpClient *http.Client) *BenefitsClient {
	return &BenefitsClient{httpClient: httpClient}
}

// Create implements vendo.BenefitsClient.Create.
func (c *BenefitsClient) Create(ctx context.Context, request *vendo.BenefitCreate) vendo.Result[*vendo.Benefit] {
	resp, err := c.httpClient.Post(ctx, "/v1/benefits", request)

	return decode[vendo.Benefit](resp, err, "creating benefit")
}

// Get implements vendo.BenefitsClient.Get.
func (c *BenefitsClient) Get(ctx context.Context, id string) vendo.Result[*vendo.Benefit] {
	mustID("benefit id", id)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/benefits/%s", id), nil)

	return decode[vendo.Benefit](resp, err, "getting benefit")
}

// List implements vendo.BenefitsClient.List.
func (c *BenefitsClient) List(ctx context.Context, page, limit int, query *vendo.Query) vendo.Result[*vendo.Page[vendo.Benefit]] {
	return listPage[vendo.Benefit](ctx, c.httpClient, "/v1/benefits", page, limit, query, "listing benefits")
}

// All implements vendo.BenefitsClient.All.
func (c *BenefitsClient) All(ctx context.Context, query *vendo.Query) *vendo.PageIterator[vendo.Benefit] {
	return vendo.NewPageIterator[vendo.Benefit](ctx, c, query, vendo.DefaultPageSize)
}

// Update implements vendo.BenefitsClient.Update.
func (c *BenefitsClient) Update(ctx context.Context, id string, request *vendo.BenefitUpdate) vendo.Result[*vendo.Benefit] {
	mustID("benefit id", id)

	resp, err := c.httpClient.Patch(ctx, fmt.Sprintf("/v1/benefits/%s", id), request)

	return decode[vendo.Benefit](resp, err, "updating benefit")
}

// Delete implements vendo.BenefitsClient.Delete.
func (c *BenefitsClient) Delete(ctx context.Context, id string) vendo.Result[vendo.Void] {
	mustID("benefit id", id)

	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/v1/benefits/%s", id))

	return deleted(err)
}
