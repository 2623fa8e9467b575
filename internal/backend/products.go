package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"go.uber.org/zap"
)

// FetchProducts retrieves the catalog from GET /api/products. Failures are
// returned as errors wrapping ErrUnavailable, never as a silent empty list:
// an empty catalog and an unreachable backend are different states.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("product fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("product fetch rejected", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}
