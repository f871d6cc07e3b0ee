package book

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a candidate record against the schema: title and author
// required and at most 255 characters, release_date a valid calendar date.
// It returns a *ValidationError describing the first failure, or nil.
func Validate(b Book) error {
	if b.ReleaseDate.IsZero() {
		return &ValidationError{Message: "release_date is required"}
	}

	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := errs[0]
	field := jsonFieldName(fe.Field())

	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "max":
		msg = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		msg = fmt.Sprintf("%s is invalid", field)
	}
	return &ValidationError{Message: msg}
}

func jsonFieldName(structField string) string {
	switch structField {
	case "ReleaseDate":
		return "release_date"
	default:
		return strings.ToLower(structField)
	}
}
