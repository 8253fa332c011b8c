// Package vendo provides types, interfaces, and helpers for working with the
// Vendo commerce and billing API.
//
// # Overview
//
// The vendo package defines the domain types (e.g., Product, Customer, Order,
// Checkout, Subscription) and the interfaces for resource-oriented clients
// (e.g., ProductsClient, OrdersClient). A concrete implementation of these
// clients is provided by the vendoclient package, which wires configuration,
// transport, authentication, and retries. Most consumers should import
// vendoclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/vendo-io/vendo-go/pkg/vendo"
//	  "github.com/vendo-io/vendo-go/pkg/vendoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := vendoclient.New().
//	    WithToken("vendo_sk_...").
//	    WithEnvironment(vendo.EnvironmentSandbox).
//	    Build()
//	  if err != nil { log.Fatal(err) }
//
//	  res := cli.Products().List(ctx, 1, 50, nil)
//	  if res.IsErr() { log.Fatal(res.Err()) }
//	  _ = res.Value()
//	}
//
// # Results and errors
//
// Every network-facing operation returns a Result instead of an error for
// expected remote conditions. A failed Result carries an Error with a closed
// ErrorKind (authentication, not_found, validation, rate_limited,
// server_error, network, canceled, unknown), so callers branch on kind rather
// than matching message text. Only precondition violations — empty tokens,
// empty required IDs — fail hard before any network call.
//
// # Queries and pagination
//
// Use Query to express listing filters; each With method returns an extended
// copy, so a Query can be shared and specialized freely. Collections are
// walked with PageIterator:
//
//	it := cli.Orders().All(ctx, vendo.NewQuery().WithStatus(vendo.OrderStatusPaid))
//	for it.HasNext() {
//	  order, err := it.Next().Unpack()
//	  if err != nil { break }
//	  _ = order
//	}
//
// or as a range-over-func sequence via it.All(), or eagerly via it.Collect().
//
// # Retries
//
// The transport retries rate limits, server errors, and network failures with
// exponential backoff and jitter, up to the configured maximum. Creates are
// safe to retry: every POST carries a client-generated idempotency key that
// stays stable across attempts.
package vendo
