// ABOUTME: Deep-link and notification resolution endpoints
// ABOUTME: Turn a shared URL or push payload into a (kind, id) destination

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsreader-core/api/dto/responses"
	"newsreader-core/core/domain"
	coreerrors "newsreader-core/core/errors"
	"newsreader-core/core/resolver"
)

// Resolver resolves deep-link URLs
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) (domain.Destination, error)
}

// ResolveHandler serves /resolve and /notifications/resolve
type ResolveHandler struct {
	resolver Resolver
}

// NewResolveHandler creates a new resolve handler
func NewResolveHandler(r Resolver) *ResolveHandler {
	return &ResolveHandler{resolver: r}
}

// RegisterRoutes registers the resolution routes
func (h *ResolveHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolveURL",
		Method:      http.MethodGet,
		Path:        "/resolve",
		Summary:     "Resolve a deep link",
		Description: "Maps a shared content URL to its kind and numeric id",
		Tags:        []string{"Resolution"},
	}, h.Resolve)

	huma.Register(api, huma.Operation{
		OperationID: "resolveNotification",
		Method:      http.MethodPost,
		Path:        "/notifications/resolve",
		Summary:     "Resolve a push notification payload",
		Description: "Extracts the destination URL from custom.a.url, url or additionalData.url and resolves it",
		Tags:        []string{"Resolution"},
	}, h.ResolveNotification)
}

// ResolveInput defines the input for the Resolve operation
type ResolveInput struct {
	URL string `query:"url" required:"true" doc:"Content URL, with or without scheme"`
}

// ResolveOutput is the resolved destination
type ResolveOutput struct {
	Body responses.DestinationResponse
}

// Resolve handles GET /resolve
func (h *ResolveHandler) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	dest, err := h.resolver.Resolve(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ResolveOutput{Body: responses.DestinationResponse{Kind: dest.Kind, ID: dest.ID}}, nil
}

// NotificationInput is an arbitrary push payload
type NotificationInput struct {
	Body map[string]interface{}
}

// ResolveNotification handles POST /notifications/resolve
func (h *ResolveHandler) ResolveNotification(ctx context.Context, input *NotificationInput) (*ResolveOutput, error) {
	target := resolver.NotificationURL(input.Body)
	if target == "" {
		return nil, toHumaError(&coreerrors.ValidationError{Field: "url", Message: "notification carries no destination url"})
	}
	return h.Resolve(ctx, &ResolveInput{URL: target})
}
