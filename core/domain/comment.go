// ABOUTME: Comment domain model with canonical lowercase reference type
// ABOUTME: Replies form a tree; FlatComment is the one-level rendering form

package domain

// DefaultReferenceType is used when a comment names no reference type.
const DefaultReferenceType = "post"

// CommentNode is a comment and its replies.
type CommentNode struct {
	ID            int           `json:"id"`
	Body          string        `json:"body"`
	AuthorName    string        `json:"name"`
	Email         string        `json:"email,omitempty"`
	ReferenceID   int           `json:"reference_id"`
	ReferenceType string        `json:"reference_type"`
	ParentID      *int          `json:"parent_id,omitempty"`
	LikeCount     int           `json:"like"`
	DislikeCount  int           `json:"dislike"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at,omitempty"`
	Replies       []CommentNode `json:"replies,omitempty"`
}

// FlatComment is a comment in arena form: replies are referenced by parent id
// instead of nesting.
type FlatComment struct {
	CommentNode
	Depth int `json:"depth"`
	// Truncated is set on a node whose deeper replies were cut off.
	Truncated bool `json:"truncated,omitempty"`
}

// NewComment is the body of a comment submission.
type NewComment struct {
	Body          string `json:"body"`
	Name          string `json:"name"`
	ReferenceID   int    `json:"reference_id"`
	ReferenceType string `json:"reference_type"`
	ParentID      *int   `json:"parent_id,omitempty"`
}

// Reaction is a like or dislike on a comment.
type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)
