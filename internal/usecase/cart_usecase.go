// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase defines the interface for the cart store: an ordered, merged
// line item sequence persisted across sessions. Every mutation persists the
// full snapshot and notifies subscribers.
type CartUsecase interface {
	// Cart returns a snapshot of the current cart.
	Cart() entity.Cart

	// Total returns the sum of price times quantity over the current items.
	Total() int64

	// AddItem merges the product into the cart: an existing line item for
	// the same product id gains one unit, otherwise a new line item with
	// quantity 1 is appended with the product's current title and price as
	// display snapshot. Consumers are expected to open the cart view.
	AddItem(ctx context.Context, product entity.Product) (entity.Cart, error)

	// AdjustQuantity changes the quantity of the line item at index by
	// delta, floored at 1. An out-of-range index is ignored.
	AdjustQuantity(ctx context.Context, index, delta int) error

	// RemoveItem removes the line item at index, preserving the relative
	// order of the rest. An out-of-range index is ignored.
	RemoveItem(ctx context.Context, index int) error

	// Clear empties the cart and persists the empty snapshot.
	Clear(ctx context.Context) error

	// Subscribe registers fn to be invoked with the new snapshot after
	// every mutation.
	Subscribe(fn func(entity.Cart))
}
