// Package middleware contains the HTTP middleware chain.
package middleware

import (
	"persona/internal/delivery/http/response"
	"persona/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// subjectKey is the echo.Context key under which the authenticated login is stored.
const subjectKey = "subject"

// AuthMiddleware guards protected routes: every request must present a valid,
// unexpired bearer token before any handler logic runs.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header. Missing, malformed,
// mis-signed and expired tokens are all rejected with the same 401 body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Invalid or expired token", "Authorization header is missing")
		}

		claims, err := m.tokenSvc.Validate(authHeader)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token", "token verification failed")
		}

		// Expose the authenticated login to handlers.
		c.Set(subjectKey, claims.Subject)

		return next(c)
	}
}

// Subject returns the authenticated login stored by Authenticate.
func Subject(c echo.Context) (string, bool) {
	subject, ok := c.Get(subjectKey).(string)

	return subject, ok && subject != ""
}
