// Package server provides the HTTP REST API for the recipe catalog.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/recipe-finder/internal/schemas"
	"github.com/jonathan/recipe-finder/internal/store"
)

// FieldError is one entry of the "errors" list in an error body.
type FieldError = schemas.FieldError

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
	Fields  []FieldError
}

func (e *ErrValidation) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s - %s", e.Message, e.Fields[0].Field, e.Fields[0].Message)
}

// ErrRecipeNotFound indicates recipe was not found
type ErrRecipeNotFound struct {
	ID int
}

func (e *ErrRecipeNotFound) Error() string {
	return fmt.Sprintf("recipe not found: %d", e.ID)
}

// ErrInvalidID indicates a path id that is not an integer
type ErrInvalidID struct {
	Raw string
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid recipe id: %q", e.Raw)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		notFoundErr   *ErrRecipeNotFound
		invalidIDErr  *ErrInvalidID
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &invalidIDErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// newValidationError converts schema and struct validation failures into an
// ErrValidation with the given message. Other errors are returned unchanged.
func newValidationError(message string, err error) error {
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return &ErrValidation{Message: message, Fields: schemaErr.Errors}
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]FieldError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, FieldError{
				Field:   fe.Field(),
				Message: describeTag(fe),
			})
		}
		return &ErrValidation{Message: message, Fields: fields}
	}

	return err
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "url":
		return "must be a valid URL"
	case "difficulty":
		return "must be one of Beginner, Intermediate, Advanced"
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
