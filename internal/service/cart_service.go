package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"luxe-be/internal/entities"
	"luxe-be/internal/models"
	"luxe-be/internal/repository"
)

// CartService mutates carts addressed by a resolved cart key
type CartService interface {
	AddItem(ctx context.Context, cartKey string, productID int64, quantity int) (int, error)
	ListItems(ctx context.Context, cartKey string) ([]entities.CartItem, error)
	RemoveItem(ctx context.Context, cartKey, itemID string) (int, error)
	UpdateQuantity(ctx context.Context, cartKey, itemID string, quantity int) (removed bool, err error)
	Clear(ctx context.Context, cartKey string) error
	Summary(ctx context.Context, cartKey string) (*models.CartResponse, error)
}

type cartService struct {
	store   repository.CartStore
	catalog *repository.ProductCatalog
	locks   *keyLock
}

// NewCartService creates a cart service. Mutations on the same cart key are serialised.
func NewCartService(store repository.CartStore, catalog *repository.ProductCatalog) CartService {
	return &cartService{
		store:   store,
		catalog: catalog,
		locks:   newKeyLock(),
	}
}

// AddItem merges into an existing line for the product or appends a new one.
// It returns the number of lines in the cart afterwards.
func (s *cartService) AddItem(ctx context.Context, cartKey string, productID int64, quantity int) (int, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	if _, err := s.catalog.FindByID(productID); err != nil {
		return 0, ErrProductNotFound
	}

	unlock := s.locks.Lock(cartKey)
	defer unlock()

	cart, err := s.store.Get(ctx, cartKey)
	if errors.Is(err, repository.ErrCartNotFound) {
		cart = entities.NewCart(cartKey)
	} else if err != nil {
		return 0, err
	}

	if i := cart.FindByProduct(productID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		item, err := entities.NewCartItem(productID, quantity)
		if err != nil {
			return 0, err
		}
		cart.Items = append(cart.Items, *item)
	}

	if err := s.save(ctx, cart); err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

// ListItems returns the items in insertion order; unknown keys yield an empty list
func (s *cartService) ListItems(ctx context.Context, cartKey string) ([]entities.CartItem, error) {
	cart, err := s.store.Get(ctx, cartKey)
	if errors.Is(err, repository.ErrCartNotFound) {
		return []entities.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}

// RemoveItem deletes one line and returns how many remain
func (s *cartService) RemoveItem(ctx context.Context, cartKey, itemID string) (int, error) {
	unlock := s.locks.Lock(cartKey)
	defer unlock()

	cart, i, err := s.locate(ctx, cartKey, itemID)
	if err != nil {
		return 0, err
	}
	cart.RemoveAt(i)
	if err := s.save(ctx, cart); err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

// UpdateQuantity replaces the quantity exactly; quantity <= 0 removes the line
func (s *cartService) UpdateQuantity(ctx context.Context, cartKey, itemID string, quantity int) (bool, error) {
	unlock := s.locks.Lock(cartKey)
	defer unlock()

	cart, i, err := s.locate(ctx, cartKey, itemID)
	if err != nil {
		return false, err
	}

	removed := quantity <= 0
	if removed {
		cart.RemoveAt(i)
	} else {
		cart.Items[i].Quantity = quantity
	}
	if err := s.save(ctx, cart); err != nil {
		return false, err
	}
	return removed, nil
}

// Clear empties an existing cart. Unknown keys are left alone.
func (s *cartService) Clear(ctx context.Context, cartKey string) error {
	unlock := s.locks.Lock(cartKey)
	defer unlock()

	_, err := s.store.Get(ctx, cartKey)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.save(ctx, entities.NewCart(cartKey))
}

// Summary prices every line against the catalog
func (s *cartService) Summary(ctx context.Context, cartKey string) (*models.CartResponse, error) {
	items, err := s.ListItems(ctx, cartKey)
	if err != nil {
		return nil, err
	}

	resp := &models.CartResponse{Items: make([]models.CartLine, 0, len(items))}
	for _, item := range items {
		line := models.CartLine{CartItem: item}
		if p, err := s.catalog.FindByID(item.ProductID); err == nil {
			line.Product = p
			line.Subtotal = round2(p.Price * float64(item.Quantity))
		}
		resp.Items = append(resp.Items, line)
		resp.Total += line.Subtotal
		resp.ItemCount += item.Quantity
	}
	resp.Total = round2(resp.Total)
	return resp, nil
}

func (s *cartService) locate(ctx context.Context, cartKey, itemID string) (*entities.Cart, int, error) {
	cart, err := s.store.Get(ctx, cartKey)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, -1, ErrCartNotFound
	}
	if err != nil {
		return nil, -1, err
	}
	i := cart.FindItem(itemID)
	if i < 0 {
		return nil, -1, ErrItemNotFound
	}
	return cart, i, nil
}

func (s *cartService) save(ctx context.Context, cart *entities.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	if err := s.store.Put(ctx, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
