package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CartItem is a single product line in a cart
type CartItem struct {
	ID        string    `json:"id"` // UUID
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

func NewCartItem(productID int64, quantity int) (*CartItem, error) {
	if productID <= 0 {
		return nil, errors.New("product id must be positive")
	}
	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	return &CartItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}, nil
}

// Cart groups items under a resolved cart key (user or session).
// It holds at most one item per product.
type Cart struct {
	Key       string     `json:"key"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(key string) *Cart {
	return &Cart{
		Key:       key,
		Items:     []CartItem{},
		UpdatedAt: time.Now().UTC(),
	}
}

// FindByProduct returns the index of the item holding productID, or -1.
func (c *Cart) FindByProduct(productID int64) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// FindItem returns the index of the item with the given id, or -1.
func (c *Cart) FindItem(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// RemoveAt deletes the item at index i keeping the order of the rest.
func (c *Cart) RemoveAt(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// ItemCount is the number of distinct lines in the cart.
func (c *Cart) ItemCount() int {
	return len(c.Items)
}
