package client

import (
	"time"

	"github.com/vendo-io/vendo-go/internal/http"
)

// NewTestClient creates a client for tests, pointed at a test server with
// retries disabled so request counts are deterministic.
func NewTestClient(baseURL string) *Client {
	httpClient := http.NewClient(baseURL, "test-token",
		http.WithRetryConfig(0, time.Millisecond, time.Millisecond))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
