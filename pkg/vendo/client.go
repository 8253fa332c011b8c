package vendo

import (
	"time"
)

// Environment selects a named Vendo API base URL.
type Environment string

const (
	// EnvironmentProduction targets the live API.
	EnvironmentProduction Environment = "production"

	// EnvironmentSandbox targets the isolated test API.
	EnvironmentSandbox Environment = "sandbox"
)

// BaseURL returns the API base URL for the environment, or "" for an
// unrecognized one.
func (e Environment) BaseURL() string {
	switch e {
	case EnvironmentProduction:
		return "https://api.vendo.dev"
	case EnvironmentSandbox:
		return "https://sandbox.api.vendo.dev"
	default:
		return ""
	}
}

// CatalogClients provides access to catalog resource clients.
type CatalogClients interface {
	Products() ProductsClient
	Meters() MetersClient
	Benefits() BenefitsClient
	CustomFields() CustomFieldsClient
}

// BillingClients provides access to order and payment resource clients.
type BillingClients interface {
	Orders() OrdersClient
	Checkouts() CheckoutsClient
	Subscriptions() SubscriptionsClient
	Payments() PaymentsClient
}

// Client provides access to all resource-specific clients. A Client is
// immutable after construction and safe for concurrent use; the pooled HTTP
// transport is the only shared state.
type Client interface {
	CatalogClients
	BillingClients

	Customers() CustomersClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a vendo.Client. Most
// consumers should use the fluent builder in pkg/vendoclient instead of
// filling this in directly.
type Config struct {
	// Token is the bearer access token. Required, non-empty.
	Token string

	// Environment selects the base URL when BaseURL is not set. Defaults to
	// EnvironmentProduction.
	Environment Environment

	// BaseURL overrides the environment-derived base URL when set.
	BaseURL string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Timeout bounds each HTTP attempt. Zero means the default.
	Timeout time.Duration

	// RetryMax is the maximum number of retries for retryable failures
	// (rate limits, server errors, network failures). Zero disables retries.
	RetryMax int

	// RetryWaitMin is the base backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax caps the backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is set.
	Debug bool

	// Logger is the optional structured logger used by the transport.
	Logger Logger
}
