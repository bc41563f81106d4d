package service

import "time"

// TokenInspector reads claims out of the opaque bearer credential without
// validating it. The client has no signing secret; expiry information is
// advisory only and the API's rejection remains authoritative.
type TokenInspector interface {
	// ExpiresAt returns the token's exp claim. ok is false when the token
	// is not a parseable JWT or carries no expiry.
	ExpiresAt(token string) (expiry time.Time, ok bool)

	// IsExpired reports whether the token carries an exp claim in the past.
	IsExpired(token string) bool
}
