// Package response defines the HTTP response bodies the service emits.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the shape of every summary error response:
// a user-facing message plus the raw error text.
type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// Error writes a summary error body with the given status code.
func Error(c echo.Context, statusCode int, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Message: message,
		Details: details,
	})
}

// BadRequest 400 error.
func BadRequest(c echo.Context, message, details string) error {
	return Error(c, http.StatusBadRequest, message, details)
}

// Unauthorized 401 error.
func Unauthorized(c echo.Context, message, details string) error {
	return Error(c, http.StatusUnauthorized, message, details)
}

// NotFound 404 error.
func NotFound(c echo.Context, message, details string) error {
	return Error(c, http.StatusNotFound, message, details)
}

// FieldErrors writes the structured field-validation body: a list of
// {field: "<message>. Actual value: <rejected>"} objects with status 400.
func FieldErrors(c echo.Context, fields []map[string]string) error {
	return c.JSON(http.StatusBadRequest, fields)
}
