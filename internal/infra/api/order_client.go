package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// orderClient implements the OrderService port against the remote API.
type orderClient struct {
	client *Client
}

// NewOrderService is the constructor for orderClient.
func NewOrderService(client *Client) service.OrderService {
	return &orderClient{client: client}
}

// placeOrderRequest matches the POST /orders payload.
type placeOrderRequest struct {
	Customer entity.DeliveryDetails `json:"customer"`
	Items    []entity.LineItem      `json:"items"`
}

// PlaceOrder submits the cart snapshot and delivery details.
func (c *orderClient) PlaceOrder(ctx context.Context, customer entity.DeliveryDetails, items []entity.LineItem) (*service.PlacedOrder, error) {
	req := placeOrderRequest{Customer: customer, Items: items}

	var placed service.PlacedOrder
	if err := c.client.doJSON(ctx, http.MethodPost, "/orders", req, &placed); err != nil {
		return nil, errors.Wrap(err, "place order")
	}

	return &placed, nil
}

// ListOrders fetches all orders.
func (c *orderClient) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.client.doJSON(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	return orders, nil
}
