package vendo

import (
	"context"
	"io"
)

// Resource client interfaces. Every operation that reaches the network
// returns a Result; missing resources surface as failed Results with
// KindNotFound on get, update, and delete alike. Empty required ID arguments
// are caller bugs and panic before any network call.

// ProductsClient manages products. Products are archived via Update rather
// than deleted.
type ProductsClient interface {
	Create(ctx context.Context, request *ProductCreate) Result[*Product]
	Get(ctx context.Context, id string) Result[*Product]
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[Product]]
	All(ctx context.Context, query *Query) *PageIterator[Product]
	Update(ctx context.Context, id string, request *ProductUpdate) Result[*Product]
}

// CustomersClient manages customers.
type CustomersClient interface {
	Create(ctx context.Context, request *CustomerCreate) Result[*Customer]
	Get(ctx context.Context, id string) Result[*Customer]
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[Customer]]
	All(ctx context.Context, query *Query) *PageIterator[Customer]
	Update(ctx context.Context, id string, request *CustomerUpdate) Result[*Customer]
	Delete(ctx context.Context, id string) Result[Void]

	// ExportYAML drains the full filtered collection and writes it as YAML,
	// returning the number of exported customers.
	ExportYAML(ctx context.Context, w io.Writer, query *Query) Result[int]
}

// OrdersClient reads orders. Orders are created by the platform when a
// checkout succeeds.
type OrdersClient interface {
	Get(ctx context.Context, id string) Result[*Order]
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[Order]]
	All(ctx context.Context, query *Query) *PageIterator[Order]

	// ExportYAML drains the full filtered collection and writes it as YAML,
	// returning the number of exported orders.
	ExportYAML(ctx context.Context, w io.Writer, query *Query) Result[int]
}

// CheckoutsClient manages hosted checkout sessions.
type CheckoutsClient interface {
	Create(ctx context.Context, request *CheckoutCreate) Result[*Checkout]
	Get(ctx context.Context, id string) Result[*Checkout]
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[Checkout]]
	All(ctx context.Context, query *Query) *PageIterator[Checkout]
	Update(ctx context.Context, id string, request *CheckoutUpdate) Result[*Checkout]
}

// SubscriptionsClient manages subscriptions. Revoke cancels immediately;
// scheduling cancellation at period end goes through Update.
type SubscriptionsClient interface {
	Get(ctx context.Context, id string) Result[*Subscription]
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[Subscription]]
	All(ctx context.Context, query *Query) *PageIterator[Subscription]
	Update(ctx context.Context, id string, request *SubscriptionUpdate) Result[*Subscription]
	Revoke(ctx context.Context, id string) Result[*Subscription]
}

// PaymentsClient reads payments.
type PaymentsClient interface {
	Get(ctx context.Context, id string) Result[*Payment]
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[Payment]]
	All(ctx context.Context, query *Query) *PageIterator[Payment]
}

// MetersClient manages usage meters.
type MetersClient interface {
	Create(ctx context.Context, request *MeterCreate) Result[*Meter]
	Get(ctx context.Context, id string) Result[*Meter]
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[Meter]]
	All(ctx context.Context, query *Query) *PageIterator[Meter]
	Update(ctx context.Context, id string, request *MeterUpdate) Result[*Meter]
}

// BenefitsClient manages benefits.
type BenefitsClient interface {
	Create(ctx context.Context, request *BenefitCreate) Result[*Benefit]
	Get(ctx context.Context, id string) Result[*Benefit]
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[Benefit]]
	All(ctx context.Context, query *Query) *PageIterator[Benefit]
	Update(ctx context.Context, id string, request *BenefitUpdate) Result[*Benefit]
	Delete(ctx context.Context, id string) Result[Void]
}

// CustomFieldsClient manages custom checkout fields.
type CustomFieldsClient interface {
	Create(ctx context.Context, request *CustomFieldCreate) Result[*CustomField]
	Get(ctx context.Context, id string) Result[*CustomField]
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[CustomField]]
	All(ctx context.Context, query *Query) *PageIterator[CustomField]
	Update(ctx context.Context, id string, request *CustomFieldUpdate) Result[*CustomField]
	Delete(ctx context.Context, id string) Result[Void]
}
