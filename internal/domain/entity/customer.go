package entity

// DeliveryDetails is the customer-supplied shipping and contact information
// captured at checkout. Every field except Landmark is required by the input
// surface. The last successful capture is persisted for reuse on subsequent
// checkouts.
type DeliveryDetails struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	City     string `json:"city"`
	Street   string `json:"street"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
}
