package session

import (
	"context"
	"time"

	"newsreader-core/core/domain"
	"newsreader-core/core/interfaces"
)

// Content is the part of the gateway the session surfaces query.
// *gateway.Gateway satisfies it.
type Content interface {
	SearchPosts(ctx context.Context, query string) ([]domain.ContentReference, error)
	SearchVideos(ctx context.Context, query string) ([]domain.ContentReference, error)
	Authors(ctx context.Context, page, perPage int, search string) ([]domain.AuthorDetail, error)
	AuthorArticles(ctx context.Context, authorID, page, limit int) ([]domain.AuthorArticle, error)
	Comments(ctx context.Context, refID int, refType string, page, perPage int) ([]domain.CommentNode, error)
}

// ManagerConfig sizes the surfaces a Manager builds.
type ManagerConfig struct {
	Debounce         time.Duration
	AuthorsPageSize  int
	ArticlesPageSize int
	CommentsPageSize int
}

// Manager owns one session per searchable surface.
type Manager struct {
	Posts   *Search[domain.ContentReference]
	Videos  *Search[domain.ContentReference]
	Authors *Paginator[domain.AuthorDetail]

	content Content
	deps    interfaces.Dependencies
	cfg     ManagerConfig
}

// NewManager builds the search and listing surfaces over content.
func NewManager(content Content, deps interfaces.Dependencies, cfg ManagerConfig) *Manager {
	deps = deps.WithDefaults()
	if cfg.AuthorsPageSize < 1 {
		cfg.AuthorsPageSize = 12
	}
	if cfg.ArticlesPageSize < 1 {
		cfg.ArticlesPageSize = 10
	}
	if cfg.CommentsPageSize < 1 {
		cfg.CommentsPageSize = 20
	}

	m := &Manager{content: content, deps: deps, cfg: cfg}
	m.Posts = NewSearch[domain.ContentReference](content.SearchPosts, deps, cfg.Debounce)
	m.Videos = NewSearch[domain.ContentReference](content.SearchVideos, deps, cfg.Debounce)
	m.Authors = NewPaginator[domain.AuthorDetail](cfg.AuthorsPageSize, func(ctx context.Context, c domain.PaginationCursor) ([]domain.AuthorDetail, error) {
		return content.Authors(ctx, c.Page, c.PageSize, c.Mode.Query)
	}, deps)
	return m
}

// AuthorArticles returns a new paginator over one author's articles.
func (m *Manager) AuthorArticles(authorID int) *Paginator[domain.AuthorArticle] {
	return NewPaginator[domain.AuthorArticle](m.cfg.ArticlesPageSize, func(ctx context.Context, c domain.PaginationCursor) ([]domain.AuthorArticle, error) {
		return m.content.AuthorArticles(ctx, authorID, c.Page, c.PageSize)
	}, m.deps)
}

// Comments returns a new paginator over the comments of one content item.
func (m *Manager) Comments(refID int, refType string) *Paginator[domain.CommentNode] {
	return NewPaginator[domain.CommentNode](m.cfg.CommentsPageSize, func(ctx context.Context, c domain.PaginationCursor) ([]domain.CommentNode, error) {
		return m.content.Comments(ctx, refID, refType, c.Page, c.PageSize)
	}, m.deps)
}

// Close cancels both search surfaces and waits for their fetches to return.
func (m *Manager) Close() {
	m.Posts.Clear()
	m.Videos.Clear()
	m.Posts.Wait()
	m.Videos.Wait()
}
