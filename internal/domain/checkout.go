package domain

// CheckoutItem is one line of the checkout payload sent to the backend.
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutUser identifies the buyer on a checkout request.
type CheckoutUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CheckoutRequest is the body of POST /api/checkout.
type CheckoutRequest struct {
	Items []CheckoutItem `json:"items"`
	User  CheckoutUser   `json:"user"`
}

// OrderResponse is the backend's answer to a checkout request.
type OrderResponse struct {
	Success    bool   `json:"success"`
	OrderID    string `json:"orderId"`
	TotalCents int64  `json:"totalCents"`
}
