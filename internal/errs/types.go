package errs

import (
	"errors"
	"strings"
)

// Kind classifies a failure. Clients never see it; it is logged and attached
// to traces.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindConstraintViolation Kind = "constraint_violation"
	KindStoreUnavailable    Kind = "store_unavailable"
	KindTransactionFailure  Kind = "transaction_failure"
	KindInvalidInput        Kind = "invalid_input"
	KindInternal            Kind = "internal"
)

// InternalErrorMessage is the only error text a client ever receives.
const InternalErrorMessage = "An internal server error occurred"

// ErrTransactionFailed marks an error that aborted a multi-statement
// transaction. The transaction has been rolled back when it is returned.
var ErrTransactionFailed = errors.New("transaction failed")

// FieldError is a single failed validation rule, kept for logs.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type handed to the global error handler.
//
// Message is serialized under "error". The wrapped cause is never
// serialized; it is exposed through Unwrap for logging.
type HTTPError struct {
	Kind    Kind   `json:"-"`
	Status  int    `json:"-"`
	Message string `json:"error"`

	Errors []FieldError `json:"-"`

	cause error
}

func (e *HTTPError) Error() string {
	if e.cause != nil {
		return string(e.Kind) + ": " + e.cause.Error()
	}
	if e.Message != "" {
		return string(e.Kind) + ": " + e.Message
	}
	return string(e.Kind)
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *HTTPError of the same kind. A target with
// an empty Kind matches any *HTTPError.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// Cause returns the wrapped error, or nil.
func (e *HTTPError) Cause() error {
	return e.cause
}

// FieldSummary renders field errors as "field: message" pairs for logging.
func (e *HTTPError) FieldSummary() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Error)
	}
	return strings.Join(parts, "; ")
}
