package service

import "errors"

// Errors surfaced to callers as the terminal outcome of an operation.
var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrInactiveAccount     = errors.New("inactive user")
	ErrUserNotFound        = errors.New("user not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrCartNotFound        = errors.New("cart not found")
	ErrItemNotFound        = errors.New("item not found in cart")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrIdentityUnavailable = errors.New("identity service unavailable")
)
