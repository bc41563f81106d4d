package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionUsecase holds the authenticated identity. Credential and profile
// are persisted and cleared together; dependent views re-derive their state
// from the change broadcast instead of a full reload.
type SessionUsecase interface {
	// Login authenticates and persists the resulting session atomically.
	Login(ctx context.Context, email, password string) (*entity.Session, error)

	// Register creates an account and persists the resulting session.
	Register(ctx context.Context, email, password, name string) (*entity.Session, error)

	// Logout clears credential and profile together.
	Logout(ctx context.Context) error

	// Current returns the held session, or nil when signed out.
	Current(ctx context.Context) *entity.Session

	// Subscribe registers fn to be invoked after login, register and
	// logout; fn receives nil on logout.
	Subscribe(fn func(*entity.Session))
}
