// ABOUTME: Content domain models for posts, videos, galleries and articles
// ABOUTME: List items share ContentReference; detail variants embed it

package domain

import "strings"

// ContentKind is the navigable kind of a content item.
type ContentKind string

const (
	KindPost    ContentKind = "post"
	KindVideo   ContentKind = "video"
	KindGallery ContentKind = "gallery"
	KindArticle ContentKind = "article"
)

// Collection returns the API collection name for the kind.
func (k ContentKind) Collection() string {
	switch k {
	case KindVideo:
		return "videos"
	case KindGallery:
		return "galleries"
	case KindArticle:
		return "articles"
	default:
		return "posts"
	}
}

// ParseContentKind maps a free-form name ("Video", "galleries", ...) to a kind.
// Unknown names map to KindPost.
func ParseContentKind(s string) ContentKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "video", "videos":
		return KindVideo
	case "gallery", "galleries":
		return KindGallery
	case "article", "articles":
		return KindArticle
	default:
		return KindPost
	}
}

// ContentAuthor is the author attached to a content item. ID is absent for
// anonymous or system authored content.
type ContentAuthor struct {
	ID   *int   `json:"id,omitempty"`
	Name string `json:"name"`
}

// ContentReference is a list item of any kind.
type ContentReference struct {
	Kind          ContentKind       `json:"kind"`
	ID            int               `json:"id"`
	Slug          *string           `json:"slug,omitempty"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	URL           string            `json:"url,omitempty"`
	DirectLink    string            `json:"direct_link,omitempty"`
	Image         ImageSet          `json:"image"`
	Author        *ContentAuthor    `json:"author,omitempty"`
	Categories    map[string]string `json:"categories,omitempty"`
	Headline      *Headline         `json:"headline,omitempty"`
	HeadlineImage *HeadlineImage    `json:"headline_image,omitempty"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at,omitempty"`
}

// SlugValue returns the slug or "".
func (r ContentReference) SlugValue() string {
	if r.Slug == nil {
		return ""
	}
	return *r.Slug
}

// Destination returns the navigation target for the item.
func (r ContentReference) Destination() Destination {
	return Destination{Kind: r.Kind, ID: r.ID}
}

// DetailCommon holds the fields every detail variant adds to the reference.
type DetailCommon struct {
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Hit      int      `json:"hit"`
	Source   string   `json:"source,omitempty"`
	Reporter string   `json:"reporter,omitempty"`
}

// PostFlags are the optional display switches of a post.
type PostFlags struct {
	CommentsOff          bool `json:"comments_off"`
	HideHeadline         bool `json:"hide_headline"`
	HideHeadlineCategory bool `json:"hide_headline_category"`
}

// PostDetail is a full post.
type PostDetail struct {
	ContentReference
	DetailCommon
	Position   []string  `json:"position,omitempty"`
	Agency     string    `json:"agency,omitempty"`
	Embed      string    `json:"embed,omitempty"`
	Video      string    `json:"video,omitempty"`
	Flags      PostFlags `json:"flags"`
	PreviousID *int      `json:"previous_id,omitempty"`
	NextID     *int      `json:"next_id,omitempty"`
}

// VideoDetail is a full video.
type VideoDetail struct {
	ContentReference
	DetailCommon
	Embed     string `json:"embed,omitempty"`
	MediaURL  string `json:"media_url,omitempty"`
	YouTubeID string `json:"youtube_id,omitempty"`
}

// GalleryPhoto is one photo of a gallery.
type GalleryPhoto struct {
	Image       string `json:"img"`
	Description string `json:"description,omitempty"`
}

// GalleryDetail is a full gallery with its photos.
type GalleryDetail struct {
	ContentReference
	DetailCommon
	Photos []GalleryPhoto `json:"photos"`
}

// ArticleDetail is a full author article. Its image is optional on the wire;
// Image is the zero ImageSet when absent.
type ArticleDetail struct {
	ContentReference
	DetailCommon
	HasImage bool `json:"has_image"`
}

// Destination is a canonical (kind, id) navigation target.
type Destination struct {
	Kind ContentKind `json:"kind"`
	ID   int         `json:"id"`
}
