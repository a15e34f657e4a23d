// Package validator adapts go-playground/validator to echo's Validator
// interface and renders failures in the structured field-error shape.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ValidationError carries the per-field failures of one request.
// The delivery error handler renders Fields as the 400 response body.
type ValidationError struct {
	Fields []map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "request validation failed"
}

// requestValidator implements echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

// New constructs the request validator.
func New() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

// Validate checks the bound request struct and converts tag failures into a
// ValidationError with one entry per failed field.
func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(err, "request validation failed")
	}

	fields := make([]map[string]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldName := strings.ToLower(fieldError.Field())
		fields = append(fields, map[string]string{
			fieldName: fmt.Sprintf("%s. Actual value: %v", fieldMessage(fieldError), fieldError.Value()),
		})
	}

	return &ValidationError{Fields: fields}
}

// fieldMessage renders the human-readable constraint message for one failure.
func fieldMessage(fieldError validator.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required":
		return field + " must be not empty"
	case "min", "max":
		if strings.EqualFold(field, "login") {
			return "Login should be between 3 and 15 characters"
		}

		return fmt.Sprintf("must be more than %s characters", fieldError.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' constraint", field, fieldError.Tag())
	}
}
