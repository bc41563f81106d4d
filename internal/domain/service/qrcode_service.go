package service

// QRCodeService generates QR code images for order confirmations.
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code encoding the order id so the
	// confirmation can be scanned from another device.
	GenerateOrderQR(orderID string) ([]byte, error)
}
