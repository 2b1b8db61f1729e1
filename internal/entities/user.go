package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a storefront customer account
type User struct {
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Don't expose password hash in JSON
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        *string   `json:"phone"` // Pointer allows nil (no phone on file)
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

// NewUser builds an active user with a fresh id. The password must already be hashed.
func NewUser(email, passwordHash, firstName, lastName string, phone *string) (*User, error) {
	switch {
	case email == "":
		return nil, errors.New("email is required")
	case passwordHash == "":
		return nil, errors.New("password hash is required")
	case firstName == "":
		return nil, errors.New("first name is required")
	case lastName == "":
		return nil, errors.New("last name is required")
	}

	return &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}, nil
}
