package service

import (
	"context"
	"sync"

	"github.com/roomiefies/admin-gateway/internal/core/domain"
)

// PerPageChoices are the page sizes the tables offer.
var PerPageChoices = []int{10, 15, 25, 50}

// FetchFunc loads one page of a remote collection for the given query.
type FetchFunc[T any] func(ctx context.Context, q domain.Query) (*domain.Page[T], error)

// Collection is one independent state group over a remote paginated
// collection: {data, loading, error, search, page, page size, sort}.
// Page, page-size and sort changes each trigger exactly one fetch;
// editing the search text triggers none until SubmitSearch.
//
// Fetch completions carry the generation current at issue time; a
// completion whose generation is stale is discarded, so only the most
// recently issued request's result is ever applied.
type Collection[T any] struct {
	fetch FetchFunc[T]

	mu      sync.Mutex
	gen     uint64
	query   domain.Query
	page    *domain.Page[T]
	loading bool
	err     error
}

func NewCollection[T any](fetch FetchFunc[T]) *Collection[T] {
	return &Collection[T]{fetch: fetch, query: domain.DefaultQuery()}
}

func (c *Collection[T]) Query() domain.Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Page returns the last successfully applied page, nil before the
// first fetch. Previous data is retained while a fetch is in flight.
func (c *Collection[T]) Page() *domain.Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Seed replaces the query state without fetching. Out-of-range values
// are normalized: page >= 1, page size one of PerPageChoices.
func (c *Collection[T]) Seed(q domain.Query) {
	if q.Page < 1 {
		q.Page = 1
	}
	if !allowedPerPage(q.PerPage) {
		q.PerPage = domain.DefaultPerPage
	}
	if q.Sort.Key == "" {
		q.Sort = domain.DefaultQuery().Sort
	}
	c.mu.Lock()
	c.query = q
	c.mu.Unlock()
}

// Load fetches the current query. Exactly one request is issued.
func (c *Collection[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	q := c.query
	c.loading = true
	c.err = nil
	c.mu.Unlock()

	page, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// Superseded while in flight; the newer request's result wins.
		return nil
	}
	c.loading = false
	if err != nil {
		c.err = err
		return err
	}
	c.page = page
	return nil
}

// SetPage moves to page n and fetches.
func (c *Collection[T]) SetPage(ctx context.Context, n int) error {
	c.mu.Lock()
	if n < 1 {
		n = 1
	}
	c.query.Page = n
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetPerPage changes the page size, resets to page 1 and fetches.
func (c *Collection[T]) SetPerPage(ctx context.Context, n int) error {
	c.mu.Lock()
	if !allowedPerPage(n) {
		n = domain.DefaultPerPage
	}
	c.query.PerPage = n
	c.query.Page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// SortBy applies the sort-toggle policy to key, resets to page 1 and
// fetches.
func (c *Collection[T]) SortBy(ctx context.Context, key string) error {
	c.mu.Lock()
	c.query.Sort = c.query.Sort.Toggle(key)
	c.query.Page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// SetSearch updates the search text only. No fetch happens until
// SubmitSearch, so typing never causes request storms.
func (c *Collection[T]) SetSearch(s string) {
	c.mu.Lock()
	c.query.Search = s
	c.mu.Unlock()
}

// SubmitSearch resets to page 1 and fetches with the pending search text.
func (c *Collection[T]) SubmitSearch(ctx context.Context) error {
	c.mu.Lock()
	c.query.Page = 1
	c.mu.Unlock()
	return c.Load(ctx)
}

// Refresh re-fetches the current query unchanged.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

func allowedPerPage(n int) bool {
	for _, v := range PerPageChoices {
		if n == v {
			return true
		}
	}
	return false
}
