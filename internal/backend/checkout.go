package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Checkout submits the cart's items to POST /api/checkout and returns the
// backend's order response. The buyer identity is the fixed one the client
// was constructed with. Each attempt carries a fresh Idempotency-Key so the
// backend can deduplicate retries.
func (c *Client) Checkout(ctx context.Context, items []domain.CheckoutItem) (*domain.OrderResponse, error) {
	payload := domain.CheckoutRequest{
		Items: items,
		User:  c.user,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/checkout", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("checkout call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("checkout rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail),
		)
		return nil, fmt.Errorf("%w: status %d", ErrCheckoutRejected, resp.StatusCode)
	}

	var order domain.OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}

	if !order.Success {
		return nil, fmt.Errorf("%w: order %q not successful", ErrCheckoutRejected, order.OrderID)
	}

	return &order, nil
}
