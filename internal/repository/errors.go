package repository

import "errors"

// Common errors returned by the repositories
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("user with this email already exists")
	ErrCartNotFound   = errors.New("cart not found")
	ErrProductMissing = errors.New("product not found")
)
