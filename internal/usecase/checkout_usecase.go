package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutUsecase converts the cart into an order submission.
type CheckoutUsecase interface {
	// Submit places an order for the current cart with the given delivery
	// details. The details are persisted for reuse before submission. On
	// success the cart is cleared; on failure it is left untouched and the
	// API's message is surfaced. No automatic retry.
	Submit(ctx context.Context, details entity.DeliveryDetails) (*entity.OrderConfirmation, error)

	// SavedDetails returns the delivery details captured on the last
	// successful checkout, or the zero value when none exist.
	SavedDetails(ctx context.Context) entity.DeliveryDetails
}
