package entities

import "errors"

// DefaultCategory is used when a product is seeded without one.
const DefaultCategory = "jewelry"

// Product is an immutable catalog entry
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
}

func NewProduct(id int64, name string, price float64, image, description, category string, inStock bool) (*Product, error) {
	switch {
	case id <= 0:
		return nil, errors.New("product id must be positive")
	case name == "":
		return nil, errors.New("product name is required")
	case price < 0:
		return nil, errors.New("product price must not be negative")
	}
	if category == "" {
		category = DefaultCategory
	}

	return &Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Image:       image,
		Description: description,
		Category:    category,
		InStock:     inStock,
	}, nil
}
