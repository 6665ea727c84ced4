package opencart

import (
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ValidationError reports a failed local precondition, such as a bad ID or
// an oversized page limit. It is raised before any request is sent.
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// TransportError wraps a connection-level failure: refused connection, DNS
// lookup failure, or a request that hit the configured timeout.
type TransportError struct {
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

// Unwrap returns the underlying transport error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// HTTPError represents a non-2xx response from the Product API. Message is
// taken from the body's error field when the body is JSON, otherwise from
// the raw text.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// InvalidResponseError reports a 2xx response whose body could not be
// understood: not JSON even after noise recovery, or a JSON document without
// the success field. Body carries a bounded prefix of the raw text.
type InvalidResponseError struct {
	Reason string
	Body   string
}

// Error implements the error interface
func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid API response: %s", e.Reason)
}
