package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendo-io/vendo-go/pkg/vendo"
)

func TestCustomFieldsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v1/custom_fields", r.URL.Path)

		var request vendo.CustomFieldCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "company", request.Slug)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "cf_1", "slug": "company", "name": "Company", "type": "text", "required": true}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	field, err := client.CustomFields().Create(context.Background(), &vendo.CustomFieldCreate{
		Slug:     "company",
		Name:     "Company",
		Type:     "text",
		Required: true,
	}).Unpack()
	require.Nil(t, err)
	assert.Equal(t, "cf_1", field.ID)
	assert.True(t, field.Required)
}

func TestCustomFieldsClient_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/custom_fields/cf_1", r.URL.Path)

		switch r.Method {
		case "PATCH":
			_, _ = w.Write([]byte(`{"id": "cf_1", "slug": "company", "name": "Company Name", "type": "text", "required": false}`))
		case "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	name := "Company Name"

	field, err := client.CustomFields().Update(context.Background(), "cf_1", &vendo.CustomFieldUpdate{
		Name: &name,
	}).Unpack()
	require.Nil(t, err)
	assert.Equal(t, "Company Name", field.Name)

	result := client.CustomFields().Delete(context.Background(), "cf_1")
	assert.True(t, result.IsOk())
}
