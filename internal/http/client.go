// Package http wraps the outbound transport: authentication headers, the
// per-attempt timeout, and the bounded retry loop with backoff and jitter.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/vendo-io/vendo-go/internal/constants"
	"github.com/vendo-io/vendo-go/pkg/vendo"
)

// Request represents an API request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client issues authenticated requests against one base URL. Failures come
// back as *vendo.Error, already classified; callers never see a raw
// transport error.
type Client struct {
	baseURL      string
	token        string
	userAgent    string
	retry        *retryablehttp.Client
	logger       vendo.Logger
	debug        bool
	interceptors *vendo.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger vendo.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTimeout bounds each HTTP attempt. The retry loop may issue several
// attempts, each with its own timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retry.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig tunes the retry loop.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retry.RetryMax = retryMax
		c.retry.RetryWaitMin = waitMin
		c.retry.RetryWaitMax = waitMax
	}
}

// WithInterceptors installs a request/response interceptor chain.
func WithInterceptors(chain *vendo.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport client. An empty token sends requests
// unauthenticated, which only test servers accept.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = constants.DefaultRetryMax
	retry.RetryWaitMin = constants.DefaultRetryWaitMin
	retry.RetryWaitMax = constants.DefaultRetryWaitMax
	retry.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retry.Logger = nil
	retry.CheckRetry = retryPolicy
	retry.Backoff = jitterBackoff
	// Keep the final response instead of swallowing it in a "giving up"
	// error, so exhausted retries still classify by status code.
	retry.ErrorHandler = func(resp *nethttp.Response, err error, _ int) (*nethttp.Response, error) {
		return resp, err
	}

	client := &Client{
		baseURL:   baseURL,
		token:     token,
		userAgent: constants.DefaultUserAgent,
		retry:     retry,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// retryPolicy re-attempts only outcomes the classifier marks retryable.
// Cancellation stops the loop immediately.
func retryPolicy(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return vendo.ClassifyTransportError(err).Retryable(), nil
	}

	if resp != nil && resp.StatusCode >= nethttp.StatusBadRequest {
		return vendo.ClassifyStatus(resp.StatusCode, nil).Retryable(), nil
	}

	return false, nil
}

// jitterBackoff doubles the base wait per attempt, caps it, and randomizes
// half of it so concurrent clients do not retry in lockstep.
func jitterBackoff(waitMin, waitMax time.Duration, attemptNum int, _ *nethttp.Response) time.Duration {
	wait := waitMin << uint(attemptNum)
	if wait <= 0 || wait > waitMax {
		wait = waitMax
	}

	jitter := time.Duration(rand.Int64N(int64(wait)/2 + 1))

	wait = wait/2 + jitter
	if wait > waitMax {
		wait = waitMax
	}

	return wait
}

// Do executes a request and returns the response, or a classified
// *vendo.Error. Retries for retryable outcomes happen inside this call;
// POST requests carry an idempotency key that stays stable across attempts.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	requestURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		requestURL += "?" + req.Query.Encode()
	}

	var body []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, vendo.NewError(vendo.KindUnknown, fmt.Sprintf("encoding request body: %v", err))
		}

		body = data
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, requestURL, rawBody)
	if err != nil {
		return nil, vendo.NewError(vendo.KindUnknown, fmt.Sprintf("creating request: %v", err))
	}

	c.setHeaders(httpReq, req.Method, body != nil)

	interceptorReq := &vendo.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
		Body:    body,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptorReq)
		if err != nil {
			return nil, vendo.NewError(vendo.KindUnknown, err.Error())
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"url":    requestURL,
		})
	}

	httpResp, doErr := c.retry.Do(httpReq)
	if httpResp == nil {
		return nil, c.transportError(ctx, doErr)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, readErr := io.ReadAll(httpResp.Body)
	if readErr != nil {
		return nil, vendo.ClassifyTransportError(readErr)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API Response", map[string]interface{}{
			"method":      req.Method,
			"url":         requestURL,
			"status_code": httpResp.StatusCode,
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptorReq, &vendo.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		})
		if err != nil {
			return nil, vendo.NewError(vendo.KindUnknown, err.Error())
		}
	}

	if httpResp.StatusCode >= nethttp.StatusBadRequest {
		return nil, vendo.ClassifyStatus(httpResp.StatusCode, data)
	}

	return resp, nil
}

// setHeaders applies authentication, content negotiation, and the
// per-logical-request idempotency key. The key is generated once, before the
// first attempt, so every retry of the same create is deduplicated
// server-side.
func (c *Client) setHeaders(httpReq *retryablehttp.Request, method string, hasBody bool) {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	if method == nethttp.MethodPost {
		httpReq.Header.Set("Idempotency-Key", uuid.NewString())
	}
}

// transportError classifies a request that produced no HTTP response,
// preferring the caller's cancellation over whatever error the transport
// reported.
func (c *Client) transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return vendo.ClassifyTransportError(ctx.Err())
	}

	if err == nil {
		err = errors.New("no response received")
	}

	return vendo.ClassifyTransportError(err)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}
