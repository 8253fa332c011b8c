package client

import (
	"context"
	"fmt"

	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// CustomFieldsClient implements vendo.CustomFieldsClient.
type CustomFieldsClient struct {
	httpClient *http.Client
}

// NewCustomFieldsClient creates a new custom fields client.
func NewCustomFieldsClient(httpClient *http.Client) *CustomFieldsClient {
	return &CustomFieldsClient{httpClient: httpClient}
}

// Create implements vendo.CustomFieldsClient.Create.
func (c *CustomFieldsClient) Create(ctx context.Context, request *vendo.CustomFieldCreate) vendo.Result[*vendo.CustomField] {
	resp, err := c.httpClient.Post(ctx, "/v1/custom_fields", request)

	return decode[vendo.CustomField](resp, err, "creating custom field")
}

// Get implements vendo.CustomFieldsClient.Get.
func (c *CustomFieldsClient) Get(ctx context.Context, id string) vendo.Result[*vendo.CustomField] {
	mustID("custom field id", id)

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/v1/custom_fields/%s", id), nil)

	return decode[vendo.CustomField](resp, err, "getting custom field")
}

// List implements vendo.CustomFieldsClient.List.
func (c *CustomFieldsClient) List(ctx context.Context, page, limit int, query *vendo.Query) vendo.Result[*vendo.Page[vendo.CustomField]] {
	return listPage[vendo.CustomField](ctx, c.httpClient, "/v1/custom_fields", page, limit, query, "listing custom fields")
}

// All implements vendo.CustomFieldsClient.All.
func (c *CustomFieldsClient) All(ctx context.Context, query *vendo.Query) *vendo.PageIterator[vendo.CustomField] {
	return vendo.NewPageIterator[vendo.CustomField](ctx, c, query, vendo.DefaultPageSize)
}

// Update implements vendo.CustomFieldsClient.Update.
func (c *CustomFieldsClient) Update(ctx context.Context, id string, request *vendo.CustomFieldUpdate) vendo.Result[*vendo.CustomField] {
	mustID("custom field id", id)

	resp, err := c.httpClient.Patch(ctx, fmt.Sprintf("/v1/custom_fields/%s", id), request)

	return decode[vendo.CustomField](resp, err, "updating custom field")
}

// Delete implements vendo.CustomFieldsClient.Delete.
func (c *CustomFieldsClient) Delete(ctx context.Context, id string) vendo.Result[vendo.Void] {
	mustID("custom field id", id)

	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("/v1/custom_fields/%s", id))

	return deleted(err)
}
