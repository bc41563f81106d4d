package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PlacedOrder is the order API's response to a successful submission.
type PlacedOrder struct {
	ID    string `json:"_id"`
	Total int64  `json:"total"`
}

// OrderService is the port to the remote order API.
type OrderService interface {
	// PlaceOrder submits the cart snapshot together with the delivery
	// details and returns the created order.
	PlaceOrder(ctx context.Context, customer entity.DeliveryDetails, items []entity.LineItem) (*PlacedOrder, error)

	// ListOrders fetches all orders. Admin only, read only.
	ListOrders(ctx context.Context) ([]entity.Order, error)
}
