// Package validation binds request data and validates it.
//
// Request payloads validate themselves, usually through validator struct
// tags. Every failure is returned as an invalid_input *errs.HTTPError; the
// field-level details are kept on the error for the server log only.
package validation

import (
	"github.com/deppfellow/tradehands/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
type Validatable interface {
	Validate() error
}

// BindAndValidate binds path parameters and the request body into payload,
// then validates it. payload must be a pointer.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.ValidationError(errors.Wrap(err, "binding request"), nil)
	}

	if err := payload.Validate(); err != nil {
		return errs.ValidationError(errors.WithStack(err), fieldErrors(err))
	}

	return nil
}
