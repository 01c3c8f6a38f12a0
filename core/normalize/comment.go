package normalize

import (
	"strings"

	"newsreader-core/core/domain"
)

// CommentReferenceType returns the canonical lowercase reference type of a
// comment: reference_type when it is a non-empty string, else content_type
// lowercased, else "post".
func CommentReferenceType(f Fields) string {
	if v := strings.TrimSpace(f.OptionalString("reference_type")); v != "" {
		return strings.ToLower(v)
	}
	if v := strings.TrimSpace(f.OptionalString("content_type")); v != "" {
		return strings.ToLower(v)
	}
	return domain.DefaultReferenceType
}

// Comment normalizes a comment and, recursively, its replies. Replies that
// fail a required field are dropped like list items.
func Comment(f Fields) (domain.CommentNode, error) {
	var c domain.CommentNode

	id, err := f.Int("id")
	if err != nil {
		return c, err
	}
	body, err := f.String("body")
	if err != nil {
		return c, err
	}
	name, err := f.String("name")
	if err != nil {
		return c, err
	}
	refID, err := f.Int("reference_id")
	if err != nil {
		return c, err
	}
	created, err := f.String("created_at")
	if err != nil {
		return c, err
	}

	replies, _, err := List(f["replies"], "replies", Comment)
	if err != nil {
		replies = nil
	}

	return domain.CommentNode{
		ID:            id,
		Body:          body,
		AuthorName:    name,
		Email:         f.OptionalString("email"),
		ReferenceID:   refID,
		ReferenceType: CommentReferenceType(f),
		ParentID:      f.OptionalInt("parent_id"),
		LikeCount:     f.IntOr("like", 0),
		DislikeCount:  f.IntOr("dislike", 0),
		CreatedAt:     created,
		UpdatedAt:     f.OptionalString("updated_at"),
		Replies:       replies,
	}, nil
}

// FlattenReplies renders a comment tree depth-first into a flat list with
// explicit parent linkage. Nodes at maxDepth keep no children and are marked
// Truncated when they had any. A maxDepth below zero means no limit.
func FlattenReplies(nodes []domain.CommentNode, maxDepth int) []domain.FlatComment {
	out := make([]domain.FlatComment, 0, len(nodes))
	var walk func(nodes []domain.CommentNode, parent *int, depth int)
	walk = func(nodes []domain.CommentNode, parent *int, depth int) {
		for _, n := range nodes {
			flat := domain.FlatComment{CommentNode: n, Depth: depth}
			flat.Replies = nil
			if flat.ParentID == nil && parent != nil {
				pid := *parent
				flat.ParentID = &pid
			}

			descend := maxDepth < 0 || depth < maxDepth
			if !descend && len(n.Replies) > 0 {
				flat.Truncated = true
			}
			out = append(out, flat)

			if descend && len(n.Replies) > 0 {
				id := n.ID
				walk(n.Replies, &id, depth+1)
			}
		}
	}
	walk(nodes, nil, 0)
	return out
}
