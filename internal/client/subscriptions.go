package client

import (
	"context"
	"fmt"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// SubscriptionsClient implements vendo.SubscriptionsClient.
type SubscriptionsClient struct {
	httpClient *http.Client
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client) *SubscriptionsClient {
	return &SubscriptionsClient{httpClient: httpClient}
}

// Get implements vendo.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id string) vendo.Result[*vendo.Subscription] {
	mustID("subscription id", id)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/subscriptions/%s", id), nil)

	return decode[vendo.Subscription](resp, err, "getting subscription")
}

// List implements vendo.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, page, limit int, query *vendo.Query) vendo.Result[*vendo.Page[vendo.Subscription]] {
	return listPage[vendo.Subscription](ctx, c.httpClient, "/v1/subscriptions", page, limit, query, "listing subscriptions")
}

// All implements vendo.SubscriptionsClient.All.
func (c *SubscriptionsClient) All(ctx context.Context, query *vendo.Query) *vendo.PageIterator[vendo.Subscription] {
	return vendo.NewPageIterator[vendo.Subscription](ctx, c, query, vendo.DefaultPageSize)
}

// Update implements vendo.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, id string, request *vendo.SubscriptionUpdate) vendo.Result[*vendo.Subscription] {
	mustID("subscription id", id)

	resp, err := c.httpClient.Patch(ctx, fmt.Sprintf("/v1/subscriptions/%s", id), request)

	return decode[vendo.Subscription](resp, err, "updating subscription")
}

// Revoke implements vendo.SubscriptionsClient.Revoke. The subscription is
// canceled immediately; the server responds with its final state.
func (c *SubscriptionsClient) Revoke(ctx context.Context, id string) vendo.Result[*vendo.Subscription] {
	mustID("subscription id", id)

	resp, err := c.httpClient.Delete(ctx, fmt.Sprintf("/v1/subscriptions/%s", id))
	if err != nil {
		return vendo.Fail[*vendo.Subscription](apiError(err))
	}

	return decode[vendo.Subscription](resp, nil, "revoking subscription")
}
