package gateway

import (
	"context"
	"strconv"
	"strings"

	"newsreader-core/core/domain"
	"newsreader-core/core/normalize"
)

const (
	// DefaultAuthorsPerPage is the authors listing page size.
	DefaultAuthorsPerPage = 12

	// DefaultArticlesPerPage is the page size of an author's article list.
	DefaultArticlesPerPage = 10
)

// Authors returns one page of columnists, optionally filtered by search.
func (g *Gateway) Authors(ctx context.Context, page, perPage int, search string) ([]domain.AuthorDetail, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultAuthorsPerPage
	}
	ep := Endpoint{
		Collection: "authors",
		Page:       page,
		PerPage:    perPage,
		Search:     strings.TrimSpace(search),
	}
	return list(ctx, g, ep, normalize.AuthorDetail)
}

// AuthorDetail returns one columnist.
func (g *Gateway) AuthorDetail(ctx context.Context, id int) (domain.AuthorDetail, error) {
	if err := validID(id); err != nil {
		return domain.AuthorDetail{}, err
	}
	ep := Endpoint{Collection: "authors", Path: []string{strconv.Itoa(id)}}
	return one(ctx, g, ep, normalize.AuthorDetail)
}

// AuthorArticles returns one page of a columnist's articles.
func (g *Gateway) AuthorArticles(ctx context.Context, authorID, page, limit int) ([]domain.AuthorArticle, error) {
	if err := validID(authorID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultArticlesPerPage
	}
	ep := Endpoint{
		Collection: "authors",
		Path:       []string{strconv.Itoa(authorID), "articles"},
		Page:       page,
		Limit:      limit,
	}
	return list(ctx, g, ep, normalize.AuthorArticle)
}
