package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthService is the port to the remote authentication API.
type AuthService interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, email, password string) (*entity.Session, error)

	// Register creates an account and returns the resulting session.
	Register(ctx context.Context, email, password, name string) (*entity.Session, error)
}
