// ABOUTME: Content endpoints for search, authors and the home screen
// ABOUTME: Thin adapters over the gateway and home loader

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsreader-core/api/dto/responses"
	"newsreader-core/core/domain"
	"newsreader-core/core/home"
)

// ContentService is the subset of the gateway served over HTTP
type ContentService interface {
	SearchPosts(ctx context.Context, query string) ([]domain.ContentReference, error)
	Authors(ctx context.Context, page, perPage int, search string) ([]domain.AuthorDetail, error)
}

// HomeLoader loads the home screen sections
type HomeLoader interface {
	Load(ctx context.Context) (home.Feed, error)
}

// ContentHandler serves content queries
type ContentHandler struct {
	content ContentService
	home    HomeLoader
}

// NewContentHandler creates a content handler. home may be nil.
func NewContentHandler(content ContentService, home HomeLoader) *ContentHandler {
	return &ContentHandler{content: content, home: home}
}

// RegisterRoutes registers the content routes
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchPosts",
		Method:      http.MethodGet,
		Path:        "/search/posts",
		Summary:     "Search posts",
		Tags:        []string{"Content"},
	}, h.SearchPosts)

	huma.Register(api, huma.Operation{
		OperationID: "listAuthors",
		Method:      http.MethodGet,
		Path:        "/authors",
		Summary:     "List authors",
		Description: "One page of authors, optionally filtered by a search term",
		Tags:        []string{"Content"},
	}, h.Authors)

	if h.home != nil {
		huma.Register(api, huma.Operation{
			OperationID: "home",
			Method:      http.MethodGet,
			Path:        "/home",
			Summary:     "Load the home screen",
			Description: "Sections load independently; failed sections are listed and left empty",
			Tags:        []string{"Content"},
		}, h.Home)
	}
}

// SearchInput defines the input for SearchPosts
type SearchInput struct {
	Query string `query:"q" required:"true" minLength:"1" doc:"Search term"`
}

// SearchOutput is the search result list
type SearchOutput struct {
	Body responses.ContentListResponse
}

// SearchPosts handles GET /search/posts
func (h *ContentHandler) SearchPosts(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	items, err := h.content.SearchPosts(ctx, input.Query)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SearchOutput{Body: responses.ContentListResponse{
		Query: input.Query,
		Count: len(items),
		Items: items,
	}}, nil
}

// AuthorsInput defines the input for Authors
type AuthorsInput struct {
	Page    int    `query:"page" minimum:"1" default:"1"`
	PerPage int    `query:"per_page" minimum:"1" maximum:"100" default:"12"`
	Search  string `query:"search"`
}

// AuthorsOutput is one page of authors
type AuthorsOutput struct {
	Body responses.AuthorsResponse
}

// Authors handles GET /authors
func (h *ContentHandler) Authors(ctx context.Context, input *AuthorsInput) (*AuthorsOutput, error) {
	authors, err := h.content.Authors(ctx, input.Page, input.PerPage, input.Search)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &AuthorsOutput{Body: responses.AuthorsResponse{
		Page:    input.Page,
		PerPage: input.PerPage,
		HasMore: len(authors) >= input.PerPage,
		Authors: authors,
	}}, nil
}

// HomeOutput is the home screen
type HomeOutput struct {
	Body responses.HomeResponse
}

// Home handles GET /home
func (h *ContentHandler) Home(ctx context.Context, _ *struct{}) (*HomeOutput, error) {
	feed, err := h.home.Load(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &HomeOutput{Body: responses.HomeResponse{
		Sections: feed.Sections,
		Failed:   feed.Failed(),
	}}, nil
}
