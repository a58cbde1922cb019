package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/deppfellow/tradehands/internal/errs"
	"github.com/go-playground/validator/v10"
)

// CustomValidationError is a rule that cannot be expressed with tags.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// fieldErrors flattens validator or custom errors into errs.FieldError.
func fieldErrors(err error) []errs.FieldError {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		out := make([]errs.FieldError, 0, len(custom))
		for _, ce := range custom {
			out = append(out, errs.FieldError{Field: ce.Field, Error: ce.Message})
		}
		return out
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make([]errs.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		out = append(out, errs.FieldError{Field: fe.Field(), Error: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	}

	if fe.Param() != "" {
		return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
	}
	return "failed " + fe.Tag()
}
