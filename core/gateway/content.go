package gateway

import (
	"context"
	"strconv"
	"strings"

	"newsreader-core/core/domain"
	coreerrors "newsreader-core/core/errors"
	"newsreader-core/core/normalize"
)

// Listing returns the default listing of kind.
func (g *Gateway) Listing(ctx context.Context, kind domain.ContentKind) ([]domain.ContentReference, error) {
	return list(ctx, g, Endpoint{Collection: kind.Collection()}, normalize.ForKind(kind))
}

// Posts returns the default post listing.
func (g *Gateway) Posts(ctx context.Context) ([]domain.ContentReference, error) {
	return g.Listing(ctx, domain.KindPost)
}

// Headlines returns the headline carousel.
func (g *Gateway) Headlines(ctx context.Context) ([]domain.ContentReference, error) {
	return g.posts(ctx, "headlines")
}

// TopHeadlines returns the top headline strip.
func (g *Gateway) TopHeadlines(ctx context.Context) ([]domain.ContentReference, error) {
	return g.posts(ctx, "topheadlines")
}

// Breaking returns breaking news.
func (g *Gateway) Breaking(ctx context.Context) ([]domain.ContentReference, error) {
	return g.posts(ctx, "breaking")
}

// Popular returns the most read posts.
func (g *Gateway) Popular(ctx context.Context) ([]domain.ContentReference, error) {
	return g.posts(ctx, "popular")
}

func (g *Gateway) posts(ctx context.Context, section string) ([]domain.ContentReference, error) {
	return list(ctx, g, Endpoint{Collection: "posts", Path: []string{section}}, normalize.Post)
}

// Featured returns the featured items of kind.
func (g *Gateway) Featured(ctx context.Context, kind domain.ContentKind) ([]domain.ContentReference, error) {
	ep := Endpoint{Collection: kind.Collection(), Path: []string{"featured"}}
	return list(ctx, g, ep, normalize.ForKind(kind))
}

// Latest returns the most recent items of kind. A limit of zero uses the
// server default.
func (g *Gateway) Latest(ctx context.Context, kind domain.ContentKind, limit int) ([]domain.ContentReference, error) {
	ep := Endpoint{Collection: kind.Collection(), Path: []string{"latest"}}
	if limit > 0 {
		ep.Path = append(ep.Path, strconv.Itoa(limit))
	}
	return list(ctx, g, ep, normalize.ForKind(kind))
}

// Trend returns trending videos.
func (g *Gateway) Trend(ctx context.Context) ([]domain.ContentReference, error) {
	return list(ctx, g, Endpoint{Collection: "videos", Path: []string{"trend"}}, normalize.Video)
}

// SearchPosts runs a free text post search.
func (g *Gateway) SearchPosts(ctx context.Context, query string) ([]domain.ContentReference, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &coreerrors.ValidationError{Field: "query", Message: "search query cannot be empty"}
	}
	return list(ctx, g, Endpoint{Collection: "posts", Path: []string{"search", query}}, normalize.Post)
}

// SearchVideos runs a free text video search.
func (g *Gateway) SearchVideos(ctx context.Context, query string) ([]domain.ContentReference, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &coreerrors.ValidationError{Field: "query", Message: "search query cannot be empty"}
	}
	return list(ctx, g, Endpoint{Collection: "videos", Search: query}, normalize.Video)
}

// PostDetail returns a full post.
func (g *Gateway) PostDetail(ctx context.Context, id int) (domain.PostDetail, error) {
	if err := validID(id); err != nil {
		return domain.PostDetail{}, err
	}
	return one(ctx, g, detail(domain.KindPost, id), normalize.PostDetail)
}

// VideoDetail returns a full video.
func (g *Gateway) VideoDetail(ctx context.Context, id int) (domain.VideoDetail, error) {
	if err := validID(id); err != nil {
		return domain.VideoDetail{}, err
	}
	return one(ctx, g, detail(domain.KindVideo, id), normalize.VideoDetail)
}

// GalleryDetail returns a full gallery.
func (g *Gateway) GalleryDetail(ctx context.Context, id int) (domain.GalleryDetail, error) {
	if err := validID(id); err != nil {
		return domain.GalleryDetail{}, err
	}
	return one(ctx, g, detail(domain.KindGallery, id), normalize.GalleryDetail)
}

// ArticleDetail returns a full author article.
func (g *Gateway) ArticleDetail(ctx context.Context, id int) (domain.ArticleDetail, error) {
	if err := validID(id); err != nil {
		return domain.ArticleDetail{}, err
	}
	return one(ctx, g, detail(domain.KindArticle, id), normalize.ArticleDetail)
}

func detail(kind domain.ContentKind, id int) Endpoint {
	return Endpoint{Collection: kind.Collection(), Path: []string{strconv.Itoa(id)}}
}

func validID(id int) error {
	if id <= 0 {
		return &coreerrors.ValidationError{Field: "id", Message: "id must be positive"}
	}
	return nil
}
