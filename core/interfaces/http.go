package interfaces

import (
	"context"
	"io"
)

// HTTPClient is the transport the Content Fetch Gateway talks through.
// Retries and backoff, if any, belong to the implementation and are invisible
// to the core.
type HTTPClient interface {
	// Get performs a GET request against url.
	Get(ctx context.Context, url string) (Response, error)

	// Post sends body as JSON to url.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response is the minimal view of an HTTP response the gateway classifies.
type Response interface {
	// StatusCode returns the HTTP status code.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the named header value, or "" when absent.
	Header(key string) string
}
