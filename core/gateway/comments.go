package gateway

import (
	"context"
	"strconv"
	"strings"

	"newsreader-core/core/domain"
	coreerrors "newsreader-core/core/errors"
	"newsreader-core/core/normalize"
)

// DefaultCommentsPerPage is the comment listing page size.
const DefaultCommentsPerPage = 20

// referenceParams carries the reference both as the lowercase tag and as the
// capitalized class name; the API reads either.
func referenceParams(refID int, refType string) map[string]string {
	refType = strings.ToLower(strings.TrimSpace(refType))
	if refType == "" {
		refType = domain.DefaultReferenceType
	}
	return map[string]string{
		"reference_id":   strconv.Itoa(refID),
		"reference_type": refType,
		"content_type":   strings.ToUpper(refType[:1]) + refType[1:],
	}
}

// Comments returns one page of top-level comments with their replies.
func (g *Gateway) Comments(ctx context.Context, refID int, refType string, page, perPage int) ([]domain.CommentNode, error) {
	if err := validID(refID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultCommentsPerPage
	}
	ep := Endpoint{
		Collection: "comments",
		Page:       page,
		PerPage:    perPage,
		Params:     referenceParams(refID, refType),
	}
	return list(ctx, g, ep, normalize.Comment)
}

// CommentCount returns the number of comments on a content item.
func (g *Gateway) CommentCount(ctx context.Context, refID int, refType string) (int, error) {
	if err := validID(refID); err != nil {
		return 0, err
	}
	ep := Endpoint{
		Collection: "comments",
		Path:       []string{"count"},
		Params:     referenceParams(refID, refType),
	}
	out, err := value[struct {
		Count int `json:"count"`
	}](ctx, g, ep)
	return out.Count, err
}

// AddComment submits a comment. The returned node is nil when the server
// accepted the comment without echoing it, e.g. pending moderation.
func (g *Gateway) AddComment(ctx context.Context, c domain.NewComment) (*domain.CommentNode, error) {
	if strings.TrimSpace(c.Body) == "" {
		return nil, &coreerrors.ValidationError{Field: "body", Message: "comment body cannot be empty"}
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil, &coreerrors.ValidationError{Field: "name", Message: "comment name cannot be empty"}
	}
	if err := validID(c.ReferenceID); err != nil {
		return nil, err
	}
	c.ReferenceType = strings.ToLower(strings.TrimSpace(c.ReferenceType))
	if c.ReferenceType == "" {
		c.ReferenceType = domain.DefaultReferenceType
	}
	return submit(ctx, g, Endpoint{Collection: "comments"}, c, normalize.Comment)
}

// LikeComment records a like or dislike on a comment.
func (g *Gateway) LikeComment(ctx context.Context, commentID int, r domain.Reaction) (*domain.CommentNode, error) {
	if err := validID(commentID); err != nil {
		return nil, err
	}
	if r != domain.ReactionLike && r != domain.ReactionDislike {
		return nil, &coreerrors.ValidationError{Field: "field", Message: "reaction must be like or dislike"}
	}
	ep := Endpoint{Collection: "comments", Path: []string{strconv.Itoa(commentID), "like"}}
	payload := map[string]string{"field": string(r)}
	return submit(ctx, g, ep, payload, normalize.Comment)
}
