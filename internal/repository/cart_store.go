package repository

import (
	"context"
	"sync"

	"luxe-be/internal/entities"
)

// CartStore persists carts by key. Implementations return ErrCartNotFound
// from Get for keys that were never stored.
type CartStore interface {
	Get(ctx context.Context, key string) (*entities.Cart, error)
	Put(ctx context.Context, cart *entities.Cart) error
	Delete(ctx context.Context, key string) error
}

// MemoryCartStore keeps carts in a map for the lifetime of the process
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]*entities.Cart
}

// NewMemoryCartStore creates an empty in-process cart store.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]*entities.Cart),
	}
}

func (s *MemoryCartStore) Get(_ context.Context, key string) (*entities.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[key]
	if !ok {
		return nil, ErrCartNotFound
	}
	return copyCart(cart), nil
}

func (s *MemoryCartStore) Put(_ context.Context, cart *entities.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.Key] = copyCart(cart)
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, key)
	return nil
}

func copyCart(c *entities.Cart) *entities.Cart {
	out := *c
	out.Items = make([]entities.CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return &out
}

var _ CartStore = (*MemoryCartStore)(nil)
