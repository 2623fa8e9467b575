package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"github.com/redis/go-redis/v9"
)

func NewRedisStorage(client *redis.Client, keyPrefix string) *RedisStorage {
	return &RedisStorage{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// RedisStorage persists the cart in Redis. The cart is stored as a JSON
// array of line items, no TTL: a cart survives until checkout clears it.
type RedisStorage struct {
	client    *redis.Client
	keyPrefix string
}

func (r *RedisStorage) Load(ctx context.Context) ([]domain.LineItem, error) {
	data, err := r.client.Get(ctx, r.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.LineItem
	if err2 := json.Unmarshal(data, &items); err2 != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err2)
	}

	return items, nil
}

func (r *RedisStorage) Save(ctx context.Context, items []domain.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := r.client.Set(ctx, r.key(), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) key() string {
	if r.keyPrefix == "" {
		return CartKey
	}
	return fmt.Sprintf("%s:%s", r.keyPrefix, CartKey)
}
