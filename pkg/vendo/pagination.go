package vendo

import (
	"context"
	"iter"
)

// Page size limits. The server caps limit at MaxPageSize; the client applies
// the same cap instead of letting the call fail.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageLister fetches one bounded page of a collection. Every resource client
// with a List operation satisfies this for its item type.
type PageLister[T any] interface {
	List(ctx context.Context, page, limit int, query *Query) Result[*Page[T]]
}

// PageIterator lazily walks every page of a collection, yielding items in
// server order within a page and in increasing page order across pages.
//
// Traversal stops after the last page (page >= max_page, or the first empty
// page when the server does not report max_page), or immediately after the
// first failed page fetch, which is yielded as a single failed Result.
// Retries happen inside the transport, never here. Cancelling ctx stops the
// traversal at the next page boundary with a Canceled failure; items already
// fetched are still yielded first.
//
// The iterator holds no cache: a new iterator always re-fetches from page 1,
// and concurrent mutation of the remote collection may cause items to be
// skipped or repeated across page boundaries.
type PageIterator[T any] struct {
	ctx     context.Context
	lister  PageLister[T]
	query   *Query
	limit   int

	page      int
	items     []T
	index     int
	maxPage   int
	exhausted bool
	failure   *Error
}

// NewPageIterator creates an iterator over every item matching query,
// fetching limit items per page. Out-of-range limits are normalized the same
// way a single List call normalizes them.
func NewPageIterator[T any](ctx context.Context, lister PageLister[T], query *Query, limit int) *PageIterator[T] {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return &PageIterator[T]{ctx: ctx, lister: lister, query: query, limit: limit}
}

// HasNext reports whether Next will yield another result. It fetches the
// next page when the buffered one is drained, so it may perform network I/O.
func (it *PageIterator[T]) HasNext() bool {
	if it.failure != nil {
		return true
	}

	if it.exhausted {
		return false
	}

	if it.index < len(it.items) {
		return true
	}

	if it.page > 0 && it.maxPage > 0 && it.page >= it.maxPage {
		it.exhausted = true

		return false
	}

	it.fetchNext()

	if it.failure != nil {
		return true
	}

	return !it.exhausted && it.index < len(it.items)
}

// Next yields the next item, or the single failure that terminated the
// traversal. Calling Next after exhaustion returns a failure wrapping
// ErrNoMoreItems.
func (it *PageIterator[T]) Next() Result[T] {
	if !it.HasNext() {
		return Fail[T](NewError(KindUnknown, ErrNoMoreItems.Error()))
	}

	if it.failure != nil {
		failure := it.failure
		it.failure = nil
		it.exhausted = true

		return Fail[T](failure)
	}

	item := it.items[it.index]
	it.index++

	return Ok(item)
}

// fetchNext loads the page after the current one into the buffer.
func (it *PageIterator[T]) fetchNext() {
	if err := it.ctx.Err(); err != nil {
		it.failure = ClassifyTransportError(err)

		return
	}

	page, err := it.lister.List(it.ctx, it.page+1, it.limit, it.query).Unpack()
	if err != nil {
		it.failure = err

		return
	}

	it.page++
	it.items = page.Items
	it.index = 0
	it.maxPage = page.Pagination.MaxPage

	if len(page.Items) == 0 {
		it.exhausted = true
	}
}

// All exposes the remaining traversal as a lazy sequence. Stopping the range
// loop stops further page fetches.
func (it *PageIterator[T]) All() iter.Seq[Result[T]] {
	return func(yield func(Result[T]) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Collect drains the traversal eagerly. The first failure wins and discards
// any items gathered before it.
func (it *PageIterator[T]) Collect() Result[[]T] {
	var items []T

	for it.HasNext() {
		item, err := it.Next().Unpack()
		if err != nil {
			return Fail[[]T](err)
		}

		items = append(items, item)
	}

	return Ok(items)
}
