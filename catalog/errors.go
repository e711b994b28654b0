package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidBaseURL indicates the catalog base URL could not be used
	ErrInvalidBaseURL = errors.New("invalid catalog base URL")
	// ErrInvalidMovieID indicates a movie id that cannot exist in the catalog
	ErrInvalidMovieID = errors.New("invalid movie id")
)

// NetworkError indicates the catalog server could not be reached
type NetworkError struct {
	URI string
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to reach catalog at %s: %v", e.URI, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError represents a non-2xx response from the catalog API
type HTTPError struct {
	URI        string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("catalog request to %s failed: status %d %s", e.URI, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError checks if the server failed rather than the request
func (e *HTTPError) IsServerError() bool {
	return e.StatusCode >= 500
}

// MalformedResponseError indicates a body that is not the expected JSON shape
type MalformedResponseError struct {
	URI string
	Err error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URI, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
