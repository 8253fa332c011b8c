package vendo_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vendo-io/vendo-go/pkg/vendo"
)

func TestQuery_Values(t *testing.T) {
	t.Parallel()

	createdAfter := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	createdBefore := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		query    *vendo.Query
		expected url.Values
	}{
		{
			name:     "nil query",
			query:    nil,
			expected: url.Values{},
		},
		{
			name:     "empty query",
			query:    vendo.NewQuery(),
			expected: url.Values{},
		},
		{
			name:  "with status",
			query: vendo.NewQuery().WithStatus(vendo.OrderStatusPaid),
			expected: url.Values{
				"status": []string{"paid"},
			},
		},
		{
			name:  "with date range",
			query: vendo.NewQuery().WithCreatedAfter(createdAfter).WithCreatedBefore(createdBefore),
			expected: url.Values{
				"created_after":  []string{"2026-01-15T09:30:00Z"},
				"created_before": []string{"2026-02-01T00:00:00Z"},
			},
		},
		{
			name: "with all filter kinds",
			query: vendo.NewQuery().
				WithStatus(vendo.SubscriptionStatusActive).
				WithCustomerID("cus_123").
				WithProductID("prod_456").
				WithEmail("me@example.com").
				WithQuery("pro plan"),
			expected: url.Values{
				"status":      []string{"active"},
				"customer_id": []string{"cus_123"},
				"product_id":  []string{"prod_456"},
				"email":       []string{"me@example.com"},
				"query":       []string{"pro plan"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.query.Values())
		})
	}
}

func TestQuery_LastWriteWins(t *testing.T) {
	t.Parallel()

	repeated := vendo.NewQuery().WithStatus("open").WithStatus("succeeded")
	direct := vendo.NewQuery().WithStatus("succeeded")

	assert.Equal(t, direct.Values(), repeated.Values())
}

func TestQuery_Immutable(t *testing.T) {
	t.Parallel()

	base := vendo.NewQuery().WithStatus("active")
	extended := base.WithName("starter")

	assert.Equal(t, url.Values{"status": []string{"active"}}, base.Values())
	assert.Equal(t, url.Values{
		"status": []string{"active"},
		"name":   []string{"starter"},
	}, extended.Values())
}

func TestEnvironment_BaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://api.vendo.dev", vendo.EnvironmentProduction.BaseURL())
	assert.Equal(t, "https://sandbox.api.vendo.dev", vendo.EnvironmentSandbox.BaseURL())
	assert.Empty(t, vendo.Environment("staging").BaseURL())
}
