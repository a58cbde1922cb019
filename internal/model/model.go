// Package model holds the marketplace entities as they are stored and
// served.
//
// Each entity embeds its create input, so a row read back after a create
// carries exactly the fields that were posted plus the store-assigned ones.
// Struct tags serve three consumers: json for the API, db for pgx row
// scanning and validate for request validation.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
