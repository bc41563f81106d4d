// Package repository defines the interfaces for the local persisted state.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrStateNotFound is returned when no snapshot exists for a state key.
var ErrStateNotFound = errors.New("state not found")

// CartRepository persists the cart snapshot across sessions. Every mutation
// of the in-memory cart writes the full snapshot; the snapshot has no expiry.
type CartRepository interface {
	// Load retrieves the persisted cart snapshot.
	Load(ctx context.Context) (entity.Cart, error)

	// Save replaces the persisted cart snapshot.
	Save(ctx context.Context, cart entity.Cart) error
}

// CustomerRepository persists the delivery details captured at checkout so
// they can be reused on subsequent orders.
type CustomerRepository interface {
	// Load retrieves the last persisted delivery details.
	Load(ctx context.Context) (entity.DeliveryDetails, error)

	// Save overwrites the persisted delivery details.
	Save(ctx context.Context, details entity.DeliveryDetails) error
}

// SessionRepository persists the credential token and user profile. The two
// are stored under independent keys but are always written and cleared
// together: a partially persisted session must never be observable.
type SessionRepository interface {
	// Load retrieves the persisted session, or ErrStateNotFound when either
	// the token or the profile is absent.
	Load(ctx context.Context) (*entity.Session, error)

	// Save persists token and profile atomically.
	Save(ctx context.Context, session *entity.Session) error

	// Clear removes token and profile together.
	Clear(ctx context.Context) error
}
