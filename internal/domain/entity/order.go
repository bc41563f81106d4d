package entity

import "time"

// Order is an order record as returned by the order API. The client reads
// orders in the admin console only; it never mutates them.
type Order struct {
	ID        string          `json:"_id"`
	Customer  DeliveryDetails `json:"customer"`
	Items     []LineItem      `json:"items"`
	Total     int64           `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderConfirmation is the transient result of a successful checkout. The
// client does not retain it beyond surfacing it to the user.
type OrderConfirmation struct {
	OrderID string
	Total   int64
	QRPNG   []byte // Optional QR code image encoding the order id.
}
