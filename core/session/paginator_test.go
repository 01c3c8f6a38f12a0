package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsreader-core/core/domain"
	"newsreader-core/core/interfaces"
)

func page(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return out
}

// pagedSource serves pre-set pages and records cursors.
type pagedSource struct {
	mu      sync.Mutex
	pages   map[int][]string
	errs    map[int]error
	cursors []domain.PaginationCursor
}

func (s *pagedSource) fetch(ctx context.Context, c domain.PaginationCursor) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors = append(s.cursors, c)
	if err := s.errs[c.Page]; err != nil {
		return nil, err
	}
	return s.pages[c.Page], nil
}

func (s *pagedSource) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cursors)
}

func TestPaginator_LoadMoreScenario(t *testing.T) {
	src := &pagedSource{pages: map[int][]string{1: page("p1", 12), 2: page("p2", 5)}}
	p := NewPaginator[string](12, src.fetch, interfaces.Dependencies{})
	ctx := context.Background()

	require.NoError(t, p.Reload(ctx))
	snap := p.Snapshot()
	assert.Len(t, snap.Items, 12)
	assert.True(t, snap.Cursor.HasMore)
	assert.Equal(t, 1, snap.Cursor.Page)

	issued, err := p.LoadMore(ctx)
	require.NoError(t, err)
	assert.True(t, issued)

	snap = p.Snapshot()
	assert.Len(t, snap.Items, 17)
	assert.False(t, snap.Cursor.HasMore)
	assert.Equal(t, 2, snap.Cursor.Page)
	assert.Equal(t, "p2-4", snap.Items[16])

	issued, err = p.LoadMore(ctx)
	assert.NoError(t, err)
	assert.False(t, issued)
	assert.Equal(t, 2, src.calls())
}

func TestPaginator_EmptyPageStopsUntilReload(t *testing.T) {
	src := &pagedSource{pages: map[int][]string{1: page("p1", 3)}}
	p := NewPaginator[string](3, src.fetch, interfaces.Dependencies{})
	ctx := context.Background()

	require.NoError(t, p.Reload(ctx))
	issued, err := p.LoadMore(ctx)
	require.NoError(t, err)
	require.True(t, issued)
	assert.False(t, p.Snapshot().Cursor.HasMore)

	issued, _ = p.LoadMore(ctx)
	assert.False(t, issued)
	assert.Equal(t, 2, src.calls(), "no fetch once the cursor is exhausted")

	require.NoError(t, p.Reload(ctx))
	snap := p.Snapshot()
	assert.True(t, snap.Cursor.HasMore)
	assert.Equal(t, 1, snap.Cursor.Page)
	assert.Len(t, snap.Items, 3)
	assert.Equal(t, 3, src.calls())
}

func TestPaginator_FailedLoadMoreRollsBack(t *testing.T) {
	boom := errors.New("page boundary broken")
	src := &pagedSource{
		pages: map[int][]string{1: page("p1", 4)},
		errs:  map[int]error{2: boom},
	}
	p := NewPaginator[string](4, src.fetch, interfaces.Dependencies{})
	ctx := context.Background()

	require.NoError(t, p.Reload(ctx))
	issued, err := p.LoadMore(ctx)
	assert.True(t, issued)
	assert.ErrorIs(t, err, boom)

	snap := p.Snapshot()
	assert.Equal(t, 1, snap.Cursor.Page)
	assert.False(t, snap.Cursor.HasMore)
	assert.Len(t, snap.Items, 4)
	assert.ErrorIs(t, snap.Err, boom)

	issued, _ = p.LoadMore(ctx)
	assert.False(t, issued)
}

func TestPaginator_FailedReloadClears(t *testing.T) {
	src := &pagedSource{pages: map[int][]string{1: page("p1", 2)}}
	p := NewPaginator[string](2, src.fetch, interfaces.Dependencies{})
	require.NoError(t, p.Reload(context.Background()))

	src.mu.Lock()
	src.errs = map[int]error{1: errors.New("down")}
	src.mu.Unlock()

	assert.Error(t, p.Reload(context.Background()))
	snap := p.Snapshot()
	assert.Empty(t, snap.Items)
	assert.False(t, snap.Cursor.HasMore)
}

func TestPaginator_SearchModeResetsCursor(t *testing.T) {
	src := &pagedSource{pages: map[int][]string{1: page("p1", 2), 2: page("p2", 2)}}
	p := NewPaginator[string](2, src.fetch, interfaces.Dependencies{})
	ctx := context.Background()

	require.NoError(t, p.Reload(ctx))
	_, err := p.LoadMore(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, p.Snapshot().Cursor.Page)

	require.NoError(t, p.Search(ctx, " ali "))
	snap := p.Snapshot()
	assert.Equal(t, 1, snap.Cursor.Page)
	assert.Equal(t, domain.ListingMode{Query: "ali"}, snap.Cursor.Mode)
	assert.Len(t, snap.Items, 2)

	_, err = p.LoadMore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ali", src.cursors[len(src.cursors)-1].Mode.Query)

	require.NoError(t, p.Search(ctx, ""))
	assert.False(t, p.Snapshot().Cursor.Mode.IsSearch())
}

func TestPaginator_OneLoadMoreAtATime(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context, c domain.PaginationCursor) ([]string, error) {
		calls.Add(1)
		if c.Page == 1 {
			return page("p1", 2), nil
		}
		close(started)
		<-release
		return page("p2", 2), nil
	}
	p := NewPaginator[string](2, fetch, interfaces.Dependencies{})
	require.NoError(t, p.Reload(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.LoadMore(context.Background())
	}()
	<-started

	issued, err := p.LoadMore(context.Background())
	assert.NoError(t, err)
	assert.False(t, issued)
	assert.True(t, p.Snapshot().Loading)

	close(release)
	<-done
	assert.Equal(t, int32(2), calls.Load())
	assert.Len(t, p.Snapshot().Items, 4)
}

func TestPaginator_ReloadSupersedesLoadMore(t *testing.T) {
	started := make(chan struct{})
	fetch := func(ctx context.Context, c domain.PaginationCursor) ([]string, error) {
		if c.Page == 1 {
			return page("fresh", 2), nil
		}
		close(started)
		<-ctx.Done()
		return page("stale", 2), nil
	}
	p := NewPaginator[string](2, fetch, interfaces.Dependencies{})
	require.NoError(t, p.Reload(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.LoadMore(context.Background())
	}()
	<-started

	require.NoError(t, p.Reload(context.Background()))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("superseded load-more was not cancelled")
	}

	snap := p.Snapshot()
	assert.Equal(t, page("fresh", 2), snap.Items)
	assert.Equal(t, 1, snap.Cursor.Page)
	assert.False(t, snap.Loading)
	assert.True(t, snap.Cursor.HasMore)
}

func TestPaginator_NoLoadMoreDuringReload(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var inflight, maxInflight atomic.Int32
	var blocked atomic.Bool
	fetch := func(ctx context.Context, c domain.PaginationCursor) ([]string, error) {
		n := inflight.Add(1)
		defer inflight.Add(-1)
		if n > maxInflight.Load() {
			maxInflight.Store(n)
		}
		if c.Page == 1 && blocked.CompareAndSwap(false, true) {
			close(started)
			<-release
		}
		return page(fmt.Sprintf("p%d", c.Page), 2), nil
	}
	p := NewPaginator[string](2, fetch, interfaces.Dependencies{})

	done := make(chan error, 1)
	go func() { done <- p.Reload(context.Background()) }()
	<-started

	issued, err := p.LoadMore(context.Background())
	assert.NoError(t, err)
	assert.False(t, issued)
	assert.True(t, p.Snapshot().Loading)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), maxInflight.Load())

	snap := p.Snapshot()
	assert.Equal(t, 1, snap.Cursor.Page)
	assert.Equal(t, page("p1", 2), snap.Items)
	assert.False(t, snap.Loading)

	issued, err = p.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, issued)
	snap = p.Snapshot()
	assert.Equal(t, 2, snap.Cursor.Page)
	assert.Equal(t, append(page("p1", 2), page("p2", 2)...), snap.Items)
}
