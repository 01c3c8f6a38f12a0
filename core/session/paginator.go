// ABOUTME: Load-more pagination over a cursor that resets on reload or mode switch
// ABOUTME: Short pages and failed load-mores end pagination until the next reload

package session

import (
	"context"
	"strings"
	"sync"

	"newsreader-core/core/domain"
	"newsreader-core/core/interfaces"
)

// PageFunc fetches the page the cursor points at.
type PageFunc[T any] func(ctx context.Context, cursor domain.PaginationCursor) ([]T, error)

// PageSnapshot is the observable state of a Paginator.
type PageSnapshot[T any] struct {
	Cursor  domain.PaginationCursor
	Items   []T
	Err     error
	Loading bool
}

// Paginator accumulates pages of a list surface.
type Paginator[T any] struct {
	fetch    PageFunc[T]
	pageSize int
	logger   interfaces.Logger

	mu        sync.Mutex
	cursor    domain.PaginationCursor
	items     []T
	err       error
	epoch     uint64
	loading   bool
	reloading bool
	cancel    context.CancelFunc
}

// NewPaginator creates a paginator in listing mode.
func NewPaginator[T any](pageSize int, fetch PageFunc[T], deps interfaces.Dependencies) *Paginator[T] {
	deps = deps.WithDefaults()
	if pageSize < 1 {
		pageSize = 1
	}
	return &Paginator[T]{
		fetch:    fetch,
		pageSize: pageSize,
		logger:   deps.Logger,
		cursor:   domain.NewCursor(pageSize, domain.ListingMode{}),
		items:    []T{},
	}
}

// Snapshot returns the current state.
func (p *Paginator[T]) Snapshot() PageSnapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	items := make([]T, len(p.items))
	copy(items, p.items)
	return PageSnapshot[T]{Cursor: p.cursor, Items: items, Err: p.err, Loading: p.loading || p.reloading}
}

// Reload fetches page 1 of the plain listing.
func (p *Paginator[T]) Reload(ctx context.Context) error {
	return p.reset(ctx, domain.ListingMode{})
}

// Search fetches page 1 of a search. An empty query reloads the listing.
func (p *Paginator[T]) Search(ctx context.Context, query string) error {
	return p.reset(ctx, domain.ListingMode{Query: strings.TrimSpace(query)})
}

// reset starts a fresh cursor in mode. An in-flight load-more is superseded
// and its result dropped. Load-more is refused until page 1 lands.
func (p *Paginator[T]) reset(ctx context.Context, mode domain.ListingMode) error {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.epoch++
	epoch := p.epoch
	p.cursor = domain.NewCursor(p.pageSize, mode)
	p.loading = false
	p.reloading = true
	cursor := p.cursor
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()
	defer cancel()

	page, err := p.fetch(ctx, cursor)

	p.mu.Lock()
	defer p.mu.Unlock()
	if epoch != p.epoch {
		return nil
	}
	p.cancel = nil
	p.reloading = false

	if err != nil {
		p.logger.Warn("List reload failed", map[string]interface{}{
			"query": mode.Query,
			"error": err.Error(),
		})
		p.items = []T{}
		p.err = err
		p.cursor.HasMore = false
		return err
	}

	p.items = append([]T{}, page...)
	p.err = nil
	p.cursor.HasMore = len(page) >= p.pageSize
	return nil
}

// LoadMore fetches the next page when the cursor has more and neither a
// load-more nor a reload is in flight. It reports whether a fetch was issued.
func (p *Paginator[T]) LoadMore(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if !p.cursor.HasMore || p.loading || p.reloading {
		p.mu.Unlock()
		return false, nil
	}
	p.loading = true
	p.cursor.Page++
	cursor := p.cursor
	epoch := p.epoch
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()
	defer cancel()

	page, err := p.fetch(ctx, cursor)

	p.mu.Lock()
	defer p.mu.Unlock()
	if epoch != p.epoch {
		return true, nil
	}
	p.loading = false
	p.cancel = nil

	if err != nil {
		p.logger.Warn("Load more failed", map[string]interface{}{
			"page":  cursor.Page,
			"error": err.Error(),
		})
		p.cursor.Page--
		p.cursor.HasMore = false
		p.err = err
		return true, err
	}

	p.items = append(p.items, page...)
	p.err = nil
	if len(page) < p.pageSize {
		p.cursor.HasMore = false
	}
	return true, nil
}
