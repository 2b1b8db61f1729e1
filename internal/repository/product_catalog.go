package repository

import (
	"fmt"

	"luxe-be/internal/entities"
)

// ProductCatalog is the read-only, preloaded product list
type ProductCatalog struct {
	products []entities.Product
	byID     map[int64]int
}

// NewProductCatalog indexes the given products. Duplicate ids are rejected.
func NewProductCatalog(products []entities.Product) (*ProductCatalog, error) {
	c := &ProductCatalog{
		products: make([]entities.Product, 0, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// All returns the products in catalog order
func (c *ProductCatalog) All() []entities.Product {
	out := make([]entities.Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID returns ErrProductMissing for unknown ids
func (c *ProductCatalog) FindByID(id int64) (*entities.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrProductMissing
	}
	p := c.products[i]
	return &p, nil
}

// DefaultProducts is the storefront's jewelry line.
func DefaultProducts() []entities.Product {
	seed := []struct {
		id          int64
		name        string
		price       float64
		image       string
		description string
		category    string
	}{
		{1, "Diamond Engagement Ring", 2999.00, "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=300&h=300&fit=crop", "Elegant 1.5 carat diamond ring in 18k white gold", "rings"},
		{2, "Pearl Necklace", 899.00, "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=300&h=300&fit=crop", "Classic freshwater pearl necklace with sterling silver clasp", "necklaces"},
		{3, "Gold Bracelet", 1299.00, "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=300&h=300&fit=crop", "Handcrafted 14k gold chain bracelet", "bracelets"},
		{4, "Sapphire Earrings", 1599.00, "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=300&h=300&fit=crop", "Blue sapphire stud earrings in white gold setting", "earrings"},
		{5, "Ruby Tennis Bracelet", 3499.00, "https://images.unsplash.com/photo-1573408301185-9146fe634ad0?w=300&h=300&fit=crop", "Stunning ruby tennis bracelet with 18k white gold setting", "bracelets"},
		{6, "Emerald Pendant", 2199.00, "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=300&h=300&fit=crop", "Exquisite emerald pendant with diamond accents", "necklaces"},
	}

	products := make([]entities.Product, 0, len(seed))
	for _, s := range seed {
		p, err := entities.NewProduct(s.id, s.name, s.price, s.image, s.description, s.category, true)
		if err != nil {
			panic(fmt.Sprintf("invalid seed product %d: %v", s.id, err))
		}
		products = append(products, *p)
	}
	return products
}
