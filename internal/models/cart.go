package models

import "luxe-be/internal/entities"

// AddCartItemRequest represents the request body for adding a product to a cart
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  *int  `json:"quantity,omitempty" binding:"omitempty,gte=1"` // defaults to 1
}

// CartMutationResponse acknowledges a cart change
type CartMutationResponse struct {
	Message   string `json:"message"`
	CartItems int    `json:"cart_items"`
}

// CartLine is a cart item joined with its catalog product
type CartLine struct {
	entities.CartItem
	Product  *entities.Product `json:"product,omitempty"`
	Subtotal float64           `json:"subtotal"`
}

// CartResponse is the priced view of a cart
type CartResponse struct {
	Items         []CartLine `json:"items"`
	Total         float64    `json:"total"`
	ItemCount     int        `json:"item_count"`
	Authenticated bool       `json:"authenticated"`
}
