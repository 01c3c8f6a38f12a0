package handlers

import (
	"context"

	"newsreader-core/core/domain"
	"newsreader-core/core/home"
)

type mockResolver struct {
	resolveFunc func(ctx context.Context, rawURL string) (domain.Destination, error)
	urls        []string
}

func (m *mockResolver) Resolve(ctx context.Context, rawURL string) (domain.Destination, error) {
	m.urls = append(m.urls, rawURL)
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, rawURL)
	}
	return domain.Destination{}, nil
}

type mockContent struct {
	searchFunc  func(ctx context.Context, query string) ([]domain.ContentReference, error)
	authorsFunc func(ctx context.Context, page, perPage int, search string) ([]domain.AuthorDetail, error)
}

func (m *mockContent) SearchPosts(ctx context.Context, query string) ([]domain.ContentReference, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockContent) Authors(ctx context.Context, page, perPage int, search string) ([]domain.AuthorDetail, error) {
	if m.authorsFunc != nil {
		return m.authorsFunc(ctx, page, perPage, search)
	}
	return nil, nil
}

type mockHome struct {
	feed home.Feed
	err  error
}

func (m *mockHome) Load(ctx context.Context) (home.Feed, error) {
	return m.feed, m.err
}
