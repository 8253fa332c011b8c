// Package client implements the vendo.Client interface and the per-resource
// endpoint sets on top of the shared transport.
package client

import (
	"fmt"
	"strings"

	"github.com/vendo-io/vendo-go/internal/constants"
	"github.com/vendo-io/vendo-go/internal/http"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// Client implements the vendo.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     vendo.Logger

	// Resource clients
	products      vendo.ProductsClient
	customers     vendo.CustomersClient
	orders        vendo.OrdersClient
	checkouts     vendo.CheckoutsClient
	subscriptions vendo.SubscriptionsClient
	payments      vendo.PaymentsClient
	meters        vendo.MetersClient
	benefits      vendo.BenefitsClient
	customFields  vendo.CustomFieldsClient
}

// New creates a new Vendo API client from a validated configuration.
func New(config *vendo.Config) (*Client, error) {
	if config == nil {
		return nil, vendo.ErrConfigRequired
	}

	token := strings.TrimSpace(config.Token)
	if token == "" {
		return nil, vendo.ErrTokenRequired
	}

	baseURL, err := resolveBaseURL(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(baseURL, token, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// resolveBaseURL applies the precedence: explicit base URL, then environment.
func resolveBaseURL(config *vendo.Config) (string, error) {
	if config.BaseURL != "" {
		return strings.TrimSuffix(config.BaseURL, "/"), nil
	}

	environment := config.Environment
	if environment == "" {
		environment = vendo.EnvironmentProduction
	}

	baseURL := environment.BaseURL()
	if baseURL == "" {
		return "", fmt.Errorf("%w: %q", vendo.ErrUnknownEnvironment, environment)
	}

	return baseURL, nil
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *vendo.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	retryMax := config.RetryMax
	if retryMax < 0 {
		retryMax = 0
	}

	retryWaitMin := constants.DefaultRetryWaitMin
	retryWaitMax := constants.DefaultRetryWaitMax

	if config.RetryWaitMin > 0 {
		retryWaitMin = config.RetryWaitMin
	}

	if config.RetryWaitMax > 0 {
		retryWaitMax = config.RetryWaitMax
	}

	httpOpts = append(httpOpts, http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax))

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.products = NewProductsClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.orders = NewOrdersClient(c.httpClient)
	c.checkouts = NewCheckoutsClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.payments = NewPaymentsClient(c.httpClient)
	c.meters = NewMetersClient(c.httpClient)
	c.benefits = NewBenefitsClient(c.httpClient)
	c.customFields = NewCustomFieldsClient(c.httpClient)
}

// Resource client accessors

// Products implements vendo.Client.Products.
func (c *Client) Products() vendo.ProductsClient {
	return c.products
}

// Customers implements vendo.Client.Customers.
func (c *Client) Customers() vendo.CustomersClient {
	return c.customers
}

// Orders implements vendo.Client.Orders.
func (c *Client) Orders() vendo.OrdersClient {
	return c.orders
}

// Checkouts implements vendo.Client.Checkouts.
func (c *Client) Checkouts() vendo.CheckoutsClient {
	return c.checkouts
}

// Subscriptions implements vendo.Client.Subscriptions.
func (c *Client) Subscriptions() vendo.SubscriptionsClient {
	return c.subscriptions
}

// Payments implements vendo.Client.Payments.
func (c *Client) Payments() vendo.PaymentsClient {
	return c.payments
}

// Meters implements vendo.Client.Meters.
func (c *Client) Meters() vendo.MetersClient {
	return c.meters
}

// Benefits implements vendo.Client.Benefits.
func (c *Client) Benefits() vendo.BenefitsClient {
	return c.benefits
}

// CustomFields implements vendo.Client.CustomFields.
func (c *Client) CustomFields() vendo.CustomFieldsClient {
	return c.customFields
}
