package repository

import (
	"context"
	"errors"
	"fmt"

	"luxe-be/internal/cache"
	"luxe-be/internal/entities"
)

// RedisCartStore keeps carts as JSON documents under "cart:<key>".
// Carts never expire on their own.
type RedisCartStore struct {
	cache cache.Cache
}

func NewRedisCartStore(c cache.Cache) *RedisCartStore {
	return &RedisCartStore{cache: c}
}

func (s *RedisCartStore) Get(ctx context.Context, key string) (*entities.Cart, error) {
	var cart entities.Cart
	err := s.cache.GetJSON(ctx, cartCacheKey(key), &cart)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []entities.CartItem{}
	}
	return &cart, nil
}

func (s *RedisCartStore) Put(ctx context.Context, cart *entities.Cart) error {
	if err := s.cache.SetJSON(ctx, cartCacheKey(cart.Key), cart, 0); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, key string) error {
	return s.cache.Delete(ctx, cartCacheKey(key))
}

func cartCacheKey(key string) string {
	return fmt.Sprintf("cart:%s", key)
}

var _ CartStore = (*RedisCartStore)(nil)
