package storage

import (
	"context"
	"errors"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
)

// CartKey is the key the serialized cart lives under in the key-value store.
const CartKey = "shoppingCart"

// CartStorage persists the cart between sessions. Consumers define this
// interface, not the Redis implementation.
type CartStorage interface {
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
	Clear(ctx context.Context) error
}

var ErrNotFound = errors.New("no cart in storage")
