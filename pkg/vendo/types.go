package vendo

import (
	"time"
)

// Resource represents the base structure for all Vendo API resources.
type Resource struct {
	ID         string     `json:"id"                    yaml:"id"`
	CreatedAt  time.Time  `json:"created_at"            yaml:"created_at"`
	ModifiedAt *time.Time `json:"modified_at,omitempty" yaml:"modified_at,omitempty"`
}

// Metadata represents user-attached key/value metadata.
type Metadata map[string]string

// PageInfo represents pagination information for a list response.
type PageInfo struct {
	Page       int `json:"page"        yaml:"page"`
	Limit      int `json:"limit"       yaml:"limit"`
	TotalCount int `json:"total_count" yaml:"total_count"`
	MaxPage    int `json:"max_page"    yaml:"max_page"`
}

// Page represents one bounded slice of a server-side collection.
type Page[T any] struct {
	Items      []T      `json:"items"      yaml:"items"`
	Pagination PageInfo `json:"pagination" yaml:"pagination"`
}

// Product represents a sellable product.
type Product struct {
	Resource

	Name        string   `json:"name"                  yaml:"name"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Archived    bool     `json:"is_archived"           yaml:"is_archived"`
	Metadata    Metadata `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// ProductCreate is the request body for creating a product.
type ProductCreate struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// ProductUpdate is the request body for updating a product. Nil fields are
// left unchanged server-side.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Archived    *bool    `json:"is_archived,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// Customer represents a billing customer.
type Customer struct {
	Resource

	Email      string   `json:"email"                 yaml:"email"`
	Name       *string  `json:"name,omitempty"        yaml:"name,omitempty"`
	ExternalID *string  `json:"external_id,omitempty" yaml:"external_id,omitempty"`
	Metadata   Metadata `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// CustomerCreate is the request body for creating a customer.
type CustomerCreate struct {
	Email      string   `json:"email"`
	Name       *string  `json:"name,omitempty"`
	ExternalID *string  `json:"external_id,omitempty"`
	Metadata   Metadata `json:"metadata,omitempty"`
}

// CustomerUpdate is the request body for updating a customer.
type CustomerUpdate struct {
	Email    *string  `json:"email,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Order statuses.
const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusRefunded = "refunded"
)

// Order represents a completed or in-flight purchase. Orders are created by
// the platform when a checkout succeeds; they cannot be created directly.
type Order struct {
	Resource

	Status     string `json:"status"      yaml:"status"`
	Amount     int64  `json:"amount"      yaml:"amount"`
	Currency   string `json:"currency"    yaml:"currency"`
	CustomerID string `json:"customer_id" yaml:"customer_id"`
	ProductID  string `json:"product_id"  yaml:"product_id"`
}

// Checkout statuses.
const (
	CheckoutStatusOpen      = "open"
	CheckoutStatusExpired   = "expired"
	CheckoutStatusSucceeded = "succeeded"
)

// Checkout represents a hosted checkout session.
type Checkout struct {
	Resource

	Status     string     `json:"status"                yaml:"status"`
	URL        string     `json:"url"                   yaml:"url"`
	ProductID  string     `json:"product_id"            yaml:"product_id"`
	CustomerID *string    `json:"customer_id,omitempty" yaml:"customer_id,omitempty"`
	SuccessURL *string    `json:"success_url,omitempty" yaml:"success_url,omitempty"`
	Amount     *int64     `json:"amount,omitempty"      yaml:"amount,omitempty"`
	Currency   string     `json:"currency"              yaml:"currency"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"  yaml:"expires_at,omitempty"`
	Metadata   Metadata   `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// CheckoutCreate is the request body for opening a checkout session.
type CheckoutCreate struct {
	ProductID  string   `json:"product_id"`
	CustomerID *string  `json:"customer_id,omitempty"`
	SuccessURL *string  `json:"success_url,omitempty"`
	Metadata   Metadata `json:"metadata,omitempty"`
}

// CheckoutUpdate is the request body for updating an open checkout session.
type CheckoutUpdate struct {
	CustomerID *string  `json:"customer_id,omitempty"`
	SuccessURL *string  `json:"success_url,omitempty"`
	Metadata   Metadata `json:"metadata,omitempty"`
}

// Subscription statuses.
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
)

// Subscription represents a recurring billing relationship.
type Subscription struct {
	Resource

	Status             string     `json:"status"                 yaml:"status"`
	CustomerID         string     `json:"customer_id"            yaml:"customer_id"`
	ProductID          string     `json:"product_id"             yaml:"product_id"`
	CurrentPeriodStart time.Time  `json:"current_period_start"   yaml:"current_period_start"`
	CurrentPeriodEnd   time.Time  `json:"current_period_end"     yaml:"current_period_end"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"   yaml:"cancel_at_period_end"`
	EndedAt            *time.Time `json:"ended_at,omitempty"     yaml:"ended_at,omitempty"`
}

// SubscriptionUpdate is the request body for updating a subscription.
type SubscriptionUpdate struct {
	CancelAtPeriodEnd *bool    `json:"cancel_at_period_end,omitempty"`
	Metadata          Metadata `json:"metadata,omitempty"`
}

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// Payment represents a payment attempt against an order. Payments are
// read-only through the API.
type Payment struct {
	Resource

	Status     string  `json:"status"             yaml:"status"`
	Amount     int64   `json:"amount"             yaml:"amount"`
	Currency   string  `json:"currency"           yaml:"currency"`
	Method     string  `json:"method"             yaml:"method"`
	CustomerID string  `json:"customer_id"        yaml:"customer_id"`
	OrderID    *string `json:"order_id,omitempty" yaml:"order_id,omitempty"`
}

// Meter aggregation types.
const (
	MeterAggregationSum   = "sum"
	MeterAggregationCount = "count"
	MeterAggregationMax   = "max"
)

// Meter represents a usage meter for metered billing.
type Meter struct {
	Resource

	Name        string   `json:"name"               yaml:"name"`
	Aggregation string   `json:"aggregation"        yaml:"aggregation"`
	Metadata    Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// MeterCreate is the request body for creating a meter.
type MeterCreate struct {
	Name        string   `json:"name"`
	Aggregation string   `json:"aggregation"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// MeterUpdate is the request body for updating a meter.
type MeterUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Benefit represents an entitlement granted by a purchase, such as license
// keys or file downloads.
type Benefit struct {
	Resource

	Type        string  `json:"type"                  yaml:"type"`
	Description string  `json:"description"           yaml:"description"`
	Selectable  bool    `json:"selectable"            yaml:"selectable"`
	ProductID   *string `json:"product_id,omitempty"  yaml:"product_id,omitempty"`
}

// BenefitCreate is the request body for creating a benefit.
type BenefitCreate struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	ProductID   *string `json:"product_id,omitempty"`
}

// BenefitUpdate is the request body for updating a benefit.
type BenefitUpdate struct {
	Description *string `json:"description,omitempty"`
}

// CustomField represents a merchant-defined field attached to checkouts.
type CustomField struct {
	Resource

	Slug     string `json:"slug"     yaml:"slug"`
	Name     string `json:"name"     yaml:"name"`
	Type     string `json:"type"     yaml:"type"`
	Required bool   `json:"required" yaml:"required"`
}

// CustomFieldCreate is the request body for creating a custom field.
type CustomFieldCreate struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// CustomFieldUpdate is the request body for updating a custom field.
type CustomFieldUpdate struct {
	Name     *string `json:"name,omitempty"`
	Required *bool   `json:"required,omitempty"`
}
