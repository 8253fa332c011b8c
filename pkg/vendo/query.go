package vendo

import (
	"maps"
	"net/url"
	"time"
)

// Query is an immutable set of listing filters. Each With method returns a
// new Query holding the receiver's filters plus the new one; the last write
// per key wins. A nil Query is valid and renders no filters.
//
// The builder performs no validation of filter semantics (for example it does
// not check that created_after precedes created_before); the remote API owns
// those checks and reports them as Validation failures.
type Query struct {
	filters map[string]string
}

// NewQuery creates an empty filter set.
func NewQuery() *Query {
	return &Query{}
}

func (q *Query) with(key, value string) *Query {
	size := 1
	if q != nil {
		size += len(q.filters)
	}

	filters := make(map[string]string, size)
	if q != nil {
		maps.Copy(filters, q.filters)
	}

	filters[key] = value

	return &Query{filters: filters}
}

// WithStatus filters by resource status.
func (q *Query) WithStatus(status string) *Query {
	return q.with("status", status)
}

// WithID filters by resource ID.
func (q *Query) WithID(id string) *Query {
	return q.with("id", id)
}

// WithCustomerID filters by owning customer.
func (q *Query) WithCustomerID(id string) *Query {
	return q.with("customer_id", id)
}

// WithProductID filters by associated product.
func (q *Query) WithProductID(id string) *Query {
	return q.with("product_id", id)
}

// WithEmail filters by customer email, on endpoints that support it.
func (q *Query) WithEmail(email string) *Query {
	return q.with("email", email)
}

// WithName filters by name substring, on endpoints that support it.
func (q *Query) WithName(name string) *Query {
	return q.with("name", name)
}

// WithQuery applies a free-text search filter.
func (q *Query) WithQuery(text string) *Query {
	return q.with("query", text)
}

// WithCreatedAfter filters to resources created at or after t (inclusive).
func (q *Query) WithCreatedAfter(t time.Time) *Query {
	return q.with("created_after", t.UTC().Format(time.RFC3339))
}

// WithCreatedBefore filters to resources created at or before t (inclusive).
func (q *Query) WithCreatedBefore(t time.Time) *Query {
	return q.with("created_before", t.UTC().Format(time.RFC3339))
}

// Values renders the filter set as URL query parameters.
func (q *Query) Values() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	for key, value := range q.filters {
		values.Set(key, value)
	}

	return values
}
