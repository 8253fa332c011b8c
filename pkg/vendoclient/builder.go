// Package vendoclient provides the main entry point for creating Vendo API
// clients.
package vendoclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/vendo-io/vendo-go/internal/client"
	"github.com/vendo-io/vendo-go/internal/constants"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// Builder assembles an immutable client configuration. Setters are fluent
// and may be chained in any order; validation happens once, at Build, so a
// misconfigured builder fails before any network call is possible.
type Builder struct {
	config vendo.Config
}

// New creates a builder with production defaults.
func New() *Builder {
	return &Builder{
		config: vendo.Config{
			Environment: vendo.EnvironmentProduction,
			Timeout:     constants.DefaultHTTPTimeout,
			RetryMax:    constants.DefaultRetryMax,
		},
	}
}

// WithToken sets the bearer access token. Required.
func (b *Builder) WithToken(token string) *Builder {
	b.config.Token = token

	return b
}

// WithEnvironment selects the named base URL.
func (b *Builder) WithEnvironment(environment vendo.Environment) *Builder {
	b.config.Environment = environment

	return b
}

// WithBaseURL overrides the environment-derived base URL. A scheme-less URL
// is normalized to https.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.BaseURL = baseURL

	return b
}

// WithUserAgent overrides the default User-Agent header.
func (b *Builder) WithUserAgent(userAgent string) *Builder {
	b.config.UserAgent = userAgent

	return b
}

// WithTimeout bounds each HTTP attempt.
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.config.Timeout = timeout

	return b
}

// WithMaxRetries sets the retry budget for retryable failures. Zero disables
// retries.
func (b *Builder) WithMaxRetries(maxRetries int) *Builder {
	b.config.RetryMax = maxRetries

	return b
}

// WithLogger sets the structured logger used by the transport.
func (b *Builder) WithLogger(logger vendo.Logger) *Builder {
	b.config.Logger = logger

	return b
}

// WithDebug enables request/response logging when a logger is set.
func (b *Builder) WithDebug(debug bool) *Builder {
	b.config.Debug = debug

	return b
}

// Build validates the configuration and constructs the client. The returned
// client is immutable and safe for concurrent use.
func (b *Builder) Build() (vendo.Client, error) {
	config := b.config

	if strings.TrimSpace(config.Token) == "" {
		return nil, vendo.ErrTokenRequired
	}

	if config.BaseURL != "" {
		config.BaseURL = normalizeBaseURL(config.BaseURL)
	}

	built, err := client.New(&config)
	if err != nil {
		return nil, fmt.Errorf("building client: %w", err)
	}

	return built, nil
}

// NewFromConfig constructs a client directly from a configuration, applying
// the same validation and normalization as the builder.
func NewFromConfig(config *vendo.Config) (vendo.Client, error) {
	if config == nil {
		return nil, vendo.ErrConfigRequired
	}

	normalized := *config
	if normalized.BaseURL != "" {
		normalized.BaseURL = normalizeBaseURL(normalized.BaseURL)
	}

	built, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("building client: %w", err)
	}

	return built, nil
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
