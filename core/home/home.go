// ABOUTME: Home screen loader fetching independent sections in parallel
// ABOUTME: A failing section stays empty and is reported without failing the others

package home

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"newsreader-core/core/domain"
	"newsreader-core/core/interfaces"
)

// DefaultConcurrency bounds simultaneous section fetches.
const DefaultConcurrency = 5

// Section names the home screen blocks.
type Section string

const (
	SectionHeadlines       Section = "headlines"
	SectionTopHeadlines    Section = "top_headlines"
	SectionBreaking        Section = "breaking"
	SectionLatestPosts     Section = "latest_posts"
	SectionLatestGalleries Section = "latest_galleries"
)

// Source is the part of the gateway the home screen reads.
// *gateway.Gateway satisfies it.
type Source interface {
	Headlines(ctx context.Context) ([]domain.ContentReference, error)
	TopHeadlines(ctx context.Context) ([]domain.ContentReference, error)
	Breaking(ctx context.Context) ([]domain.ContentReference, error)
	Latest(ctx context.Context, kind domain.ContentKind, limit int) ([]domain.ContentReference, error)
}

// Feed is a loaded home screen.
type Feed struct {
	Sections map[Section][]domain.ContentReference `json:"sections"`
	// Errors holds the failure of each section that could not be loaded.
	Errors map[Section]error `json:"-"`
}

// Failed returns the failed sections in a stable order.
func (f Feed) Failed() []Section {
	out := make([]Section, 0, len(f.Errors))
	for s := range f.Errors {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Loader fetches every home section.
type Loader struct {
	source      Source
	logger      interfaces.Logger
	concurrency int
	latestLimit int
}

// NewLoader creates a loader. concurrency below 1 uses DefaultConcurrency.
func NewLoader(source Source, deps interfaces.Dependencies, concurrency int) *Loader {
	deps = deps.WithDefaults()
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Loader{source: source, logger: deps.Logger, concurrency: concurrency, latestLimit: 10}
}

// Load fetches all sections. It only returns an error when ctx ends first.
func (l *Loader) Load(ctx context.Context) (Feed, error) {
	fetchers := map[Section]func(context.Context) ([]domain.ContentReference, error){
		SectionHeadlines:    l.source.Headlines,
		SectionTopHeadlines: l.source.TopHeadlines,
		SectionBreaking:     l.source.Breaking,
		SectionLatestPosts: func(ctx context.Context) ([]domain.ContentReference, error) {
			return l.source.Latest(ctx, domain.KindPost, l.latestLimit)
		},
		SectionLatestGalleries: func(ctx context.Context) ([]domain.ContentReference, error) {
			return l.source.Latest(ctx, domain.KindGallery, l.latestLimit)
		},
	}

	feed := Feed{
		Sections: make(map[Section][]domain.ContentReference, len(fetchers)),
		Errors:   map[Section]error{},
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for section, fetch := range fetchers {
		g.Go(func() error {
			items, err := fetch(gctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				l.logger.Warn("Home section failed", map[string]interface{}{
					"section": string(section),
					"error":   err.Error(),
				})
				feed.Sections[section] = []domain.ContentReference{}
				feed.Errors[section] = err
				return nil
			}
			feed.Sections[section] = items
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return feed, err
	}
	return feed, nil
}
