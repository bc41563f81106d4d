package entity

// LineItem is one product-quantity pairing in the cart. Title and Price are
// display snapshots captured when the product was added; they are not
// re-validated against the catalog afterwards.
type LineItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Cart is the ordered set of line items for the current shopper.
// Insertion order is first-added order and at most one line item exists
// per product id.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Total returns the sum of price times quantity over all line items.
func (c Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}

	return total
}

// Quantity returns the total number of units across all line items.
func (c Cart) Quantity() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}

	return n
}

// IsEmpty reports whether the cart holds no line items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
