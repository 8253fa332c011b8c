package vendo_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendo-io/vendo-go/pkg/vendo"
)

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	var order []string

	chain := vendo.NewInterceptorChain()
	chain.AddRequestInterceptor(func(_ context.Context, _ *vendo.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(_ context.Context, _ *vendo.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &vendo.Request{Method: "GET", Path: "/v1/orders"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_RequestErrorAborts(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("rejected")

	chain := vendo.NewInterceptorChain()
	chain.AddRequestInterceptor(func(_ context.Context, _ *vendo.Request) error {
		return sentinel
	})
	chain.AddRequestInterceptor(func(_ context.Context, _ *vendo.Request) error {
		t.Fatal("second interceptor must not run")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &vendo.Request{Method: "GET", Path: "/v1/orders"})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	req := &vendo.Request{
		Method:  "GET",
		Path:    "/v1/products",
		Headers: make(http.Header),
	}

	interceptor := vendo.HeaderInterceptor("X-Request-Source", "integration-test")
	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "integration-test", req.Headers.Get("X-Request-Source"))
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	var seenStatus int

	chain := vendo.NewInterceptorChain()
	chain.AddResponseInterceptor(func(_ context.Context, _ *vendo.Request, resp *vendo.Response) error {
		seenStatus = resp.StatusCode

		return nil
	})

	err := chain.ExecuteResponseInterceptors(context.Background(),
		&vendo.Request{Method: "GET", Path: "/v1/orders"},
		&vendo.Response{StatusCode: 200})
	require.NoError(t, err)
	assert.Equal(t, 200, seenStatus)
}
