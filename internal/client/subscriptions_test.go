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

func TestSubscriptionsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/subscriptions/sub_123", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"id": "sub_123",
			"status": "active",
			"customer_id": "cus_1",
			"product_id": "prod_1",
			"cancel_at_period_end": false
		}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	subscription, err := client.Subscriptions().Get(context.Background(), "sub_123").Unpack()
	require.Nil(t, err)
	assert.Equal(t, vendo.SubscriptionStatusActive, subscription.Status)
	assert.False(t, subscription.CancelAtPeriodEnd)
}

func TestSubscriptionsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)

		var request vendo.SubscriptionUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.NotNil(t, request.CancelAtPeriodEnd)
		assert.True(t, *request.CancelAtPeriodEnd)

		_, _ = w.Write([]byte(`{"id": "sub_123", "status": "active", "cancel_at_period_end": true}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	cancel := true

	subscription, err := client.Subscriptions().Update(context.Background(), "sub_123", &vendo.SubscriptionUpdate{
		CancelAtPeriodEnd: &cancel,
	}).Unpack()
	require.Nil(t, err)
	assert.True(t, subscription.CancelAtPeriodEnd)
}

func TestSubscriptionsClient_Revoke(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/v1/subscriptions/sub_123", r.URL.Path)

		_, _ = w.Write([]byte(`{"id": "sub_123", "status": "canceled", "ended_at": "2026-08-25T12:00:00Z"}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	subscription, err := client.Subscriptions().Revoke(context.Background(), "sub_123").Unpack()
	require.Nil(t, err)
	assert.Equal(t, vendo.SubscriptionStatusCanceled, subscription.Status)
	require.NotNil(t, subscription.EndedAt)
}

func TestSubscriptionsClient_RevokeNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result := client.Subscriptions().Revoke(context.Background(), "sub_missing")
	require.True(t, result.IsErr())
	assert.True(t, result.IsNotFound())
}
