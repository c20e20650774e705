package inference

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable covers transport failures, timeouts and non-2xx responses.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrMalformedResponse means the backend answered but not in the declared shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// BackendError is returned by every primary operation that fails.
type BackendError struct {
	Op         string
	Kind       error
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %v (status %d): %v", e.Op, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *BackendError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Retryable reports whether the failure was transient on the transport side.
// Malformed payloads and client-side rejections are never retried.
func (e *BackendError) Retryable() bool {
	if !errors.Is(e.Kind, ErrBackendUnavailable) {
		return false
	}
	return e.StatusCode == 0 || e.StatusCode == 429 || e.StatusCode >= 500
}

func Unavailable(op string, statusCode int, err error) error {
	return &BackendError{Op: op, Kind: ErrBackendUnavailable, StatusCode: statusCode, Err: err}
}

func Malformed(op string, err error) error {
	return &BackendError{Op: op, Kind: ErrMalformedResponse, Err: err}
}
