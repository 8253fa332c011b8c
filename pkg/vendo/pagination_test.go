package vendo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendo-io/vendo-go/pkg/vendo"
)

type testItem struct {
	ID string
}

// mockLister serves a fixed collection split into pages, counting requests.
type mockLister struct {
	pages      map[int]*vendo.Page[testItem]
	calls      int
	failOnPage int
}

func (m *mockLister) List(_ context.Context, page, limit int, _ *vendo.Query) vendo.Result[*vendo.Page[testItem]] {
	m.calls++

	if m.failOnPage != 0 && page == m.failOnPage {
		return vendo.Fail[*vendo.Page[testItem]](vendo.NewError(vendo.KindServerError, "backend exploded"))
	}

	response, ok := m.pages[page]
	if !ok {
		return vendo.Ok(&vendo.Page[testItem]{
			Items:      []testItem{},
			Pagination: vendo.PageInfo{Page: page, Limit: limit},
		})
	}

	return vendo.Ok(response)
}

// newMockLister splits total items into pages of perPage.
func newMockLister(total, perPage int) *mockLister {
	maxPage := (total + perPage - 1) / perPage
	pages := make(map[int]*vendo.Page[testItem])

	item := 0
	for page := 1; page <= maxPage; page++ {
		size := perPage
		if remaining := total - item; remaining < size {
			size = remaining
		}

		items := make([]testItem, 0, size)
		for range size {
			item++
			items = append(items, testItem{ID: fmt.Sprintf("item-%d", item)})
		}

		pages[page] = &vendo.Page[testItem]{
			Items: items,
			Pagination: vendo.PageInfo{
				Page:       page,
				Limit:      perPage,
				TotalCount: total,
				MaxPage:    maxPage,
			},
		}
	}

	return &mockLister{pages: pages}
}

func TestPageIterator_WalksAllPages(t *testing.T) {
	t.Parallel()

	// 12 items across 3 pages of 5/5/2.
	lister := newMockLister(12, 5)
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 5)

	var ids []string

	for iterator.HasNext() {
		item, err := iterator.Next().Unpack()
		require.Nil(t, err)
		ids = append(ids, item.ID)
	}

	require.Len(t, ids, 12)
	assert.Equal(t, "item-1", ids[0])
	assert.Equal(t, "item-12", ids[11])
	assert.Equal(t, 3, lister.calls)
}

func TestPageIterator_HasNext(t *testing.T) {
	t.Parallel()

	lister := newMockLister(3, 2)
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 2)

	// Should have next before any fetch
	assert.True(t, iterator.HasNext())

	item1 := iterator.Next()
	require.True(t, item1.IsOk())
	assert.Equal(t, "item-1", item1.Value().ID)

	assert.True(t, iterator.HasNext())

	item2 := iterator.Next()
	require.True(t, item2.IsOk())
	assert.Equal(t, "item-2", item2.Value().ID)

	// Should still have next (page 2)
	assert.True(t, iterator.HasNext())

	item3 := iterator.Next()
	require.True(t, item3.IsOk())
	assert.Equal(t, "item-3", item3.Value().ID)

	assert.False(t, iterator.HasNext())
}

func TestPageIterator_EmptyCollection(t *testing.T) {
	t.Parallel()

	lister := &mockLister{pages: map[int]*vendo.Page[testItem]{}}
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 10)

	assert.False(t, iterator.HasNext())
	assert.Equal(t, 1, lister.calls)
}

func TestPageIterator_NextAfterExhaustion(t *testing.T) {
	t.Parallel()

	lister := &mockLister{pages: map[int]*vendo.Page[testItem]{}}
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 10)

	require.False(t, iterator.HasNext())

	result := iterator.Next()
	require.True(t, result.IsErr())
	assert.Contains(t, result.Err().Message, "no more items")
}

func TestPageIterator_StopsOnFirstFailure(t *testing.T) {
	t.Parallel()

	lister := newMockLister(12, 5)
	lister.failOnPage = 2
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 5)

	var (
		okCount int
		failure *vendo.Error
	)

	for iterator.HasNext() {
		item, err := iterator.Next().Unpack()
		if err != nil {
			failure = err

			continue
		}

		_ = item
		okCount++
	}

	assert.Equal(t, 5, okCount)
	require.NotNil(t, failure)
	assert.Equal(t, vendo.KindServerError, failure.Kind)
	// Page 1 and the failing page 2; page 3 must never be requested.
	assert.Equal(t, 2, lister.calls)
}

func TestPageIterator_CancellationStopsFetching(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	lister := newMockLister(12, 5)
	iterator := vendo.NewPageIterator[testItem](ctx, lister, nil, 5)

	// Drain the first page, then cancel before the next boundary.
	for range 5 {
		require.True(t, iterator.HasNext())
		require.True(t, iterator.Next().IsOk())
	}

	cancel()

	require.True(t, iterator.HasNext())
	result := iterator.Next()
	require.True(t, result.IsErr())
	assert.Equal(t, vendo.KindCanceled, result.Err().Kind)

	assert.False(t, iterator.HasNext())
	assert.Equal(t, 1, lister.calls)
}

func TestPageIterator_NoMaxPageStopsOnEmptyPage(t *testing.T) {
	t.Parallel()

	// Server that never reports max_page: traversal continues until the
	// first empty page.
	pages := map[int]*vendo.Page[testItem]{
		1: {
			Items:      []testItem{{ID: "item-1"}, {ID: "item-2"}},
			Pagination: vendo.PageInfo{Page: 1, Limit: 2, TotalCount: 3},
		},
		2: {
			Items:      []testItem{{ID: "item-3"}},
			Pagination: vendo.PageInfo{Page: 2, Limit: 2, TotalCount: 3},
		},
	}

	lister := &mockLister{pages: pages}
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 2)

	var count int

	for iterator.HasNext() {
		require.True(t, iterator.Next().IsOk())
		count++
	}

	assert.Equal(t, 3, count)
	// Pages 1 and 2 plus the empty page 3 that ends the traversal.
	assert.Equal(t, 3, lister.calls)
}

func TestPageIterator_All(t *testing.T) {
	t.Parallel()

	lister := newMockLister(7, 3)
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 3)

	var ids []string

	for result := range iterator.All() {
		item, err := result.Unpack()
		require.Nil(t, err)
		ids = append(ids, item.ID)
	}

	assert.Len(t, ids, 7)
	assert.Equal(t, 3, lister.calls)
}

func TestPageIterator_AllStopsWhenConsumerBreaks(t *testing.T) {
	t.Parallel()

	lister := newMockLister(12, 5)
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 5)

	var count int

	for result := range iterator.All() {
		require.True(t, result.IsOk())

		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
	assert.Equal(t, 1, lister.calls)
}

func TestPageIterator_Collect(t *testing.T) {
	t.Parallel()

	lister := newMockLister(12, 5)
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 5)

	items, err := iterator.Collect().Unpack()
	require.Nil(t, err)
	assert.Len(t, items, 12)
}

func TestPageIterator_CollectPropagatesFailure(t *testing.T) {
	t.Parallel()

	lister := newMockLister(12, 5)
	lister.failOnPage = 3
	iterator := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 5)

	result := iterator.Collect()
	require.True(t, result.IsErr())
	assert.Equal(t, vendo.KindServerError, result.Err().Kind)
}

func TestPageIterator_FreshIteratorRestartsFromPageOne(t *testing.T) {
	t.Parallel()

	lister := newMockLister(4, 2)

	first := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 2)
	firstItems, err := first.Collect().Unpack()
	require.Nil(t, err)

	second := vendo.NewPageIterator[testItem](context.Background(), lister, nil, 2)
	secondItems, err := second.Collect().Unpack()
	require.Nil(t, err)

	assert.Equal(t, firstItems, secondItems)
	// No caching: the second traversal re-fetched both pages.
	assert.Equal(t, 4, lister.calls)
}
