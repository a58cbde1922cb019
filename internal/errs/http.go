package errs

import (
	"errors"
	"net/http"
)

// NewNotFoundError creates a 404 error. A not-found response has no body.
func NewNotFoundError() *HTTPError {
	return &HTTPError{
		Kind:   KindNotFound,
		Status: http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 of the given kind wrapping cause.
// The client-facing message is always InternalErrorMessage.
func NewInternalServerError(kind Kind, cause error) *HTTPError {
	if kind == "" {
		kind = KindInternal
	}
	return &HTTPError{
		Kind:    kind,
		Status:  http.StatusInternalServerError,
		Message: InternalErrorMessage,
		cause:   cause,
	}
}

// ValidationError wraps a failed bind or validation as invalid input.
//
// Invalid input is reported like any other server failure: the store would
// have rejected the same payload.
func ValidationError(cause error, fields []FieldError) *HTTPError {
	e := NewInternalServerError(KindInvalidInput, cause)
	e.Errors = fields
	return e
}

// Response maps the error onto the status code and body written to the
// client. A nil body means no body.
func (e *HTTPError) Response() (int, any) {
	if e.Status == http.StatusNotFound {
		return http.StatusNotFound, nil
	}
	return http.StatusInternalServerError, &HTTPError{Message: InternalErrorMessage}
}

// IsNotFound reports whether err carries a not-found HTTPError.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Kind == KindNotFound
}
