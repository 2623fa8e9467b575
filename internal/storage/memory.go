package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
)

// MemoryStorage keeps the serialized cart in process memory. It stands in
// for the browser's local storage when no Redis is configured, and in tests.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string][]byte),
	}
}

func (m *MemoryStorage) Load(_ context.Context) ([]domain.LineItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.values[CartKey]
	if !ok {
		return nil, ErrNotFound
	}

	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return items, nil
}

func (m *MemoryStorage) Save(_ context.Context, items []domain.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[CartKey] = raw
	return nil
}

func (m *MemoryStorage) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, CartKey)
	return nil
}

// SetRaw stores an arbitrary value under key, bypassing serialization.
// Used to seed corrupt data in tests.
func (m *MemoryStorage) SetRaw(key string, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = raw
}
