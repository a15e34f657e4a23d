package service

import "github.com/golang-jwt/jwt/v5"

// Claims defines the claims embedded in issued bearer tokens.
// Subject carries the account login; expiry lives in RegisteredClaims.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token for the given subject (account login).
	// The returned string carries the "Bearer " prefix, ready for an
	// Authorization header.
	Issue(subject string) (string, error)

	// Validate checks an Authorization header value: it strips the Bearer
	// prefix, verifies the signature and expiry, and returns the claims.
	Validate(headerValue string) (*Claims, error)
}
