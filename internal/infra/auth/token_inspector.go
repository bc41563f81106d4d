// Package auth provides credential inspection helpers. The client never
// validates token signatures; it only reads advisory claims.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain/service"
)

// tokenInspector reads claims from a bearer token without verification.
type tokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector is the constructor for tokenInspector.
func NewTokenInspector() service.TokenInspector {
	return &tokenInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the token's exp claim when the token is a parseable JWT.
func (t *tokenInspector) ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := t.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// IsExpired reports whether the token carries an exp claim in the past.
// Tokens without a readable expiry are never reported expired; the API's
// rejection remains the authoritative signal.
func (t *tokenInspector) IsExpired(token string) bool {
	expiry, ok := t.ExpiresAt(token)
	if !ok {
		return false
	}

	return expiry.Before(time.Now())
}
