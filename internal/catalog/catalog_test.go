package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockFetcher struct {
	calls    atomic.Int64
	products []domain.Product
	err      error
	block    chan struct{} // when non-nil, FetchProducts waits until closed
}

func (m *mockFetcher) FetchProducts(context.Context) ([]domain.Product, error) {
	m.calls.Add(1)
	if m.block != nil {
		<-m.block
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func TestProducts_FetchesOnce(t *testing.T) {
	fetcher := &mockFetcher{
		products: []domain.Product{{ID: "p_001", Name: "Wireless Mouse", PriceCents: 5000}},
	}
	sut := NewService(fetcher, zap.NewNop())
	ctx := context.Background()

	first, err := sut.Products(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second call is served from cache
	second, err := sut.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), fetcher.calls.Load())
}

func TestProducts_ConcurrentCallersShareOneFetch(t *testing.T) {
	fetcher := &mockFetcher{
		products: []domain.Product{{ID: "p_001"}},
		block:    make(chan struct{}),
	}
	sut := NewService(fetcher, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			products, err := sut.Products(context.Background())
			assert.NoError(t, err)
			assert.Len(t, products, 1)
		}()
	}

	require.Eventually(t, func() bool {
		return fetcher.calls.Load() >= 1
	}, time.Second, time.Millisecond)
	close(fetcher.block)
	wg.Wait()

	assert.Equal(t, int64(1), fetcher.calls.Load())
}

func TestProducts_ErrorPropagates(t *testing.T) {
	fetcher := &mockFetcher{err: fmt.Errorf("shop backend unavailable")}
	sut := NewService(fetcher, zap.NewNop())

	products, err := sut.Products(context.Background())
	require.ErrorContains(t, err, "unavailable")
	assert.Nil(t, products)
}

func TestProducts_EmptyCatalogIsNotAnError(t *testing.T) {
	fetcher := &mockFetcher{products: []domain.Product{}}
	sut := NewService(fetcher, zap.NewNop())

	products, err := sut.Products(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFind(t *testing.T) {
	fetcher := &mockFetcher{
		products: []domain.Product{
			{ID: "p_001", Name: "Wireless Mouse"},
			{ID: "p_002", Name: "Mechanical Keyboard"},
		},
	}
	sut := NewService(fetcher, zap.NewNop())
	ctx := context.Background()

	p, ok, err := sut.Find(ctx, "p_002")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Mechanical Keyboard", p.Name)

	_, ok, err = sut.Find(ctx, "p_999")
	require.NoError(t, err)
	assert.False(t, ok)
}
