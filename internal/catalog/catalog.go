// Package catalog serves the product list to the presentation layer,
// deduplicating and briefly caching backend fetches.
package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ProductFetcher retrieves the catalog from the shop backend. Satisfied by
// backend.Client.
type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}

type Service struct {
	fetcher ProductFetcher
	logger  *zap.Logger
	sfg     singleflight.Group // Collapses concurrent fetches into one call

	mu        sync.RWMutex
	cached    []domain.Product
	fetchedAt time.Time
	ttl       time.Duration
}

const defaultCacheTTL = 30 * time.Second

func NewService(fetcher ProductFetcher, logger *zap.Logger) *Service {
	if fetcher == nil || logger == nil {
		panic("catalog: service constructed without its dependencies")
	}
	return &Service{
		fetcher: fetcher,
		logger:  logger,
		ttl:     defaultCacheTTL,
	}
}

// Products returns the catalog, from cache when fresh. A failed fetch is
// returned as an error so callers can render "backend unreachable" instead
// of an empty catalog; an empty catalog is a valid nil-error result.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		cached := s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	v, err, shared := s.sfg.Do("products", func() (interface{}, error) {
		products, errFetch := s.fetcher.FetchProducts(ctx)
		if errFetch != nil {
			return nil, errFetch
		}

		s.mu.Lock()
		s.cached = products
		s.fetchedAt = time.Now()
		s.mu.Unlock()

		return products, nil
	})
	if err != nil {
		s.logger.Warn("catalog fetch failed", zap.Error(err))
		return nil, err
	}
	if shared {
		s.logger.Debug("catalog fetch shared across concurrent callers")
	}

	return v.([]domain.Product), nil
}

// Find returns the product with the given id from the current catalog.
func (s *Service) Find(ctx context.Context, productID string) (domain.Product, bool, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return domain.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == productID {
			return p, true, nil
		}
	}
	return domain.Product{}, false, nil
}
