package home

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsreader-core/core/domain"
	coreerrors "newsreader-core/core/errors"
	"newsreader-core/core/interfaces"
)

type fakeSource struct {
	delay   time.Duration
	failing map[string]error
	active  atomic.Int32
	peak    atomic.Int32
}

func (f *fakeSource) serve(ctx context.Context, name string, kind domain.ContentKind) ([]domain.ContentReference, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.failing[name]; err != nil {
		return nil, err
	}
	return []domain.ContentReference{{Kind: kind, ID: 1, Name: name}}, nil
}

func (f *fakeSource) Headlines(ctx context.Context) ([]domain.ContentReference, error) {
	return f.serve(ctx, "headlines", domain.KindPost)
}

func (f *fakeSource) TopHeadlines(ctx context.Context) ([]domain.ContentReference, error) {
	return f.serve(ctx, "topheadlines", domain.KindPost)
}

func (f *fakeSource) Breaking(ctx context.Context) ([]domain.ContentReference, error) {
	return f.serve(ctx, "breaking", domain.KindPost)
}

func (f *fakeSource) Latest(ctx context.Context, kind domain.ContentKind, limit int) ([]domain.ContentReference, error) {
	return f.serve(ctx, "latest-"+kind.Collection(), kind)
}

func TestLoader_AllSections(t *testing.T) {
	l := NewLoader(&fakeSource{}, interfaces.Dependencies{}, 0)

	feed, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, feed.Sections, 5)
	assert.Empty(t, feed.Errors)
	assert.Equal(t, domain.KindGallery, feed.Sections[SectionLatestGalleries][0].Kind)
	assert.Equal(t, "breaking", feed.Sections[SectionBreaking][0].Name)
}

func TestLoader_SectionsFailIndependently(t *testing.T) {
	boom := &coreerrors.FetchError{Kind: coreerrors.KindServer, StatusCode: 500}
	src := &fakeSource{failing: map[string]error{"breaking": boom, "latest-galleries": errors.New("x")}}
	l := NewLoader(src, interfaces.Dependencies{}, 2)

	feed, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionBreaking, SectionLatestGalleries}, feed.Failed())
	assert.Empty(t, feed.Sections[SectionBreaking])
	assert.NotNil(t, feed.Sections[SectionBreaking])
	assert.Len(t, feed.Sections[SectionHeadlines], 1)
	assert.True(t, coreerrors.IsServer(feed.Errors[SectionBreaking]))
}

func TestLoader_BoundedConcurrency(t *testing.T) {
	src := &fakeSource{delay: 20 * time.Millisecond}
	l := NewLoader(src, interfaces.Dependencies{}, 2)

	_, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, src.peak.Load(), int32(2))
}

func TestLoader_ContextCancelled(t *testing.T) {
	src := &fakeSource{delay: time.Second}
	l := NewLoader(src, interfaces.Dependencies{}, 5)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := l.Load(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
