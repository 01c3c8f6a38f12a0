// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts core errors to appropriate HTTP responses

package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "newsreader-core/core/errors"
)

// toHumaError converts core errors to Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case coreerrors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case coreerrors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case coreerrors.IsServer(err), coreerrors.IsTransport(err):
		return huma.Error503ServiceUnavailable("Content service unavailable", err)
	case coreerrors.IsClient(err):
		return huma.Error502BadGateway("Content service rejected the request", err)
	case coreerrors.IsDecode(err), coreerrors.IsUnexpectedFormat(err):
		return huma.Error502BadGateway("Content service returned an unexpected payload", err)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout("Content service timed out")
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
