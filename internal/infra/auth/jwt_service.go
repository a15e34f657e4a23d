// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"persona/config"
	domainerrors "persona/internal/domain/errors"
	"persona/internal/domain/service"
)

// TokenPrefix is prepended to issued tokens so the value can be placed
// directly into an Authorization header.
const TokenPrefix = "Bearer "

// defaultTokenTTL is the validity window for issued tokens: 10 days.
const defaultTokenTTL = 240 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It refuses to start without a signing secret; the secret is injected via
// configuration and never hard-coded.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Token,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed HS256 token binding the subject to an absolute
// expiry, formatted with the Bearer prefix.
func (s *jwtService) Issue(subject string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return TokenPrefix + signed, nil
}

// Validate checks an Authorization header value. A token is valid iff it
// carries the Bearer prefix, its signature verifies against the secret and
// its expiry is in the future. Every failure maps to the same token error so
// callers cannot probe for partial validity.
func (s *jwtService) Validate(headerValue string) (*service.Claims, error) {
	tokenString := strings.TrimPrefix(headerValue, TokenPrefix)
	if tokenString == headerValue || tokenString == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("missing bearer prefix")
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject any signing method other than HMAC to prevent algorithm
		// substitution.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token verification failed")
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("subject missing from token")
	}

	return claims, nil
}
