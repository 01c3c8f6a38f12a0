// ABOUTME: Error taxonomy for content fetching, decoding and deep-link resolution
// ABOUTME: Every error is a typed struct with an errors.As based predicate

package errors

import (
	"errors"
	"fmt"
)

// FetchKind classifies why a content request failed.
type FetchKind string

const (
	// KindTransport means no response was received (network, timeout).
	KindTransport FetchKind = "transport"

	// KindServer is a 5xx response.
	KindServer FetchKind = "server"

	// KindClient is a 4xx response.
	KindClient FetchKind = "client"

	// KindUnexpectedFormat is a body that is not JSON, including HTML error
	// pages served with a 2xx status.
	KindUnexpectedFormat FetchKind = "unexpected_format"
)

// FetchError is a classified failure of one content request.
type FetchError struct {
	Kind       FetchKind
	StatusCode int
	Message    string
	Endpoint   string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s failed (%s", e.Endpoint, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(", status %d", e.StatusCode)
	}
	msg += ")"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// DecodeReason says how a required field was unusable.
type DecodeReason string

const (
	MissingRequiredField DecodeReason = "missing_required_field"
	WrongShape           DecodeReason = "wrong_shape"
)

// DecodeError means data was received but its shape could not be trusted.
type DecodeError struct {
	Field  string
	Reason DecodeReason
	Cause  error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error on field '%s': %s: %v", e.Field, e.Reason, e.Cause)
	}
	return fmt.Sprintf("decode error on field '%s': %s", e.Field, e.Reason)
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Missing builds a MissingRequiredField DecodeError.
func Missing(field string) *DecodeError {
	return &DecodeError{Field: field, Reason: MissingRequiredField}
}

// Malformed builds a WrongShape DecodeError.
func Malformed(field string, cause error) *DecodeError {
	return &DecodeError{Field: field, Reason: WrongShape, Cause: cause}
}

// ResolutionError means an inbound link could not be turned into a destination.
// Fetch failures during fallback search are folded into it; Cause keeps them
// for logging.
type ResolutionError struct {
	URL   string
	Slug  string
	Cause error
}

// Error implements the error interface
func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not resolve %q: not found: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("could not resolve %q: not found", e.URL)
}

// Unwrap returns the underlying cause
func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// KindOf returns the fetch kind of err, or "" when err is not a FetchError.
func KindOf(err error) FetchKind {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return ""
}

// IsTransport checks if an error is a transport FetchError
func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

// IsServer checks if an error is a 5xx FetchError
func IsServer(err error) bool {
	return KindOf(err) == KindServer
}

// IsClient checks if an error is a 4xx FetchError
func IsClient(err error) bool {
	return KindOf(err) == KindClient
}

// IsUnexpectedFormat checks if an error is a non-JSON body FetchError
func IsUnexpectedFormat(err error) bool {
	return KindOf(err) == KindUnexpectedFormat
}

// IsFetch checks if an error is any FetchError
func IsFetch(err error) bool {
	return KindOf(err) != ""
}

// IsDecode checks if an error is a DecodeError
func IsDecode(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// IsNotFound checks if an error is a ResolutionError
func IsNotFound(err error) bool {
	var resErr *ResolutionError
	return errors.As(err, &resErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// Outcome returns the metrics label for err: "ok", a fetch kind, "decode" or "error".
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsFetch(err):
		return string(KindOf(err))
	case IsDecode(err):
		return "decode"
	default:
		return "error"
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
