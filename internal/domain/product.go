package domain

// Product is a catalog entry served by the shop backend. Prices are in
// minor currency units (cents).
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	ImageURL    string `json:"imageUrl"`
	Currency    string `json:"currency"`
}
