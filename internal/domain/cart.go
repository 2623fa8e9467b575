package domain

// LineItem is a product in the cart plus its quantity. A cart holds at most
// one line item per product id.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// TotalCents sums price times quantity over the given line items.
func TotalCents(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}
