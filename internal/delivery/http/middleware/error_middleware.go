package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"persona/internal/delivery/http/response"
	"persona/internal/delivery/http/validator"
	domainerrors "persona/internal/domain/errors"
)

// ErrorMiddleware is the single place where typed errors become HTTP
// responses: the AppError table decides the status code, nothing inspects
// error strings, and nothing escapes as a crash.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Structured field-validation failures render as a list of
	// {field: message} objects.
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.FieldErrors(c, validationErr.Fields)

		return
	}

	// Application errors carry their own status code and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if details == "" {
			details = err.Error()
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message(), details)

		return
	}

	// Echo's own errors (404 route miss, method not allowed, bind failures).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		_ = response.Error(c, httpErr.Code, message, err.Error())

		return
	}

	// Everything else is an internal failure: log it, return a generic 500.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, "Internal server error", err.Error())
}
