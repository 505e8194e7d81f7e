package bingwt

import (
	"context"

	"github.com/seotools-io/bingwt/internal/constants"
)

// Page is one fetched unit of a paginated result set.
type Page[T any] struct {
	Items []T

	// TotalPages is the server-reported total page count, or 0 when the
	// endpoint does not report one.
	TotalPages int
}

// PageFetcher retrieves a single page by its 0-based index.
type PageFetcher[T any] func(ctx context.Context, page int) (*Page[T], error)

// PageOptions configures a PageIterator.
type PageOptions struct {
	// StartPage is the first 0-based page index to fetch. Must not be
	// negative.
	StartPage int

	// MaxPages bounds the number of pages fetched in this enumeration,
	// independent of the server-reported total. Some endpoints never
	// decrement their reported total, so the guard is a hard bound, not a
	// fallback. Values <= 0 use the default guard.
	MaxPages int
}

// PageIterator lazily walks a paginated result set in strictly increasing
// page order. Each page index is fetched at most once per enumeration. The
// sequence ends at the first of: an empty page, the server-reported total
// page count, or the MaxPages guard.
//
// Iterators are not safe for concurrent use; page fetches are sequential so
// an empty page can terminate the enumeration before further requests go
// out.
type PageIterator[T any] struct {
	ctx     context.Context
	fetch   PageFetcher[T]
	next    int
	fetched int
	max     int
	total   int
	buf     []T
	done    bool
	err     error
}

// NewPageIterator builds an iterator over fetch. A negative StartPage is
// rejected here, before any request is sent.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T], opts PageOptions) (*PageIterator[T], error) {
	if opts.StartPage < 0 {
		return nil, ValidationErrorf("page index must not be negative, got %d", opts.StartPage)
	}

	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = constants.DefaultMaxPages
	}

	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
		next:  opts.StartPage,
		max:   maxPages,
		total: -1,
	}, nil
}

// HasNext reports whether another item is available, fetching the next page
// if the buffer is drained.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if len(it.buf) > 0 {
		return true
	}

	if it.done {
		return false
	}

	it.fetchNext()

	return it.err == nil && len(it.buf) > 0
}

// Next returns the next item. After the sequence is exhausted it returns
// ErrNoMoreItems; after a fetch failure it keeps returning that failure.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.buf[0]
	it.buf = it.buf[1:]

	return item, nil
}

// All drains the remaining sequence into a slice. Items fetched before a
// failure are not returned; the error wins.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if it.err != nil {
		return nil, it.err
	}

	return items, nil
}

// PagesFetched returns the number of pages retrieved so far.
func (it *PageIterator[T]) PagesFetched() int {
	return it.fetched
}

// Err returns the fetch error that ended the enumeration, if any.
func (it *PageIterator[T]) Err() error {
	return it.err
}

func (it *PageIterator[T]) fetchNext() {
	if it.fetched >= it.max {
		it.done = true

		return
	}

	if it.total >= 0 && it.next >= it.total {
		it.done = true

		return
	}

	page, err := it.fetch(it.ctx, it.next)
	if err != nil {
		it.err = err
		it.done = true

		return
	}

	it.fetched++
	it.next++

	if page == nil || len(page.Items) == 0 {
		it.done = true

		return
	}

	if page.TotalPages > 0 {
		it.total = page.TotalPages
	}

	it.buf = append(it.buf, page.Items...)
}
