package vendo

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vendo-io/vendo-go/internal/constants"
)

// BatchGetResult pairs a requested ID with the outcome of its fetch.
type BatchGetResult[T any] struct {
	ID     string
	Result Result[T]
}

// BatchGet fetches many resources by ID with bounded concurrency. Results
// come back in input order, one per ID; failures are carried per item and do
// not stop the remaining fetches. concurrency <= 0 selects the default limit.
//
// The goroutines live only for the duration of the call; this layer starts
// no background workers.
func BatchGet[T any](
	ctx context.Context,
	ids []string,
	concurrency int,
	get func(ctx context.Context, id string) Result[T],
) []BatchGetResult[T] {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	results := make([]BatchGetResult[T], len(ids))

	for i, id := range ids {
		group.Go(func() error {
			results[i] = BatchGetResult[T]{ID: id, Result: get(ctx, id)}

			return nil
		})
	}

	_ = group.Wait()

	return results
}
