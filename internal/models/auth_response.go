package models

import (
	"time"

	"luxe-be/internal/entities"
)

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"

// UserResponse is the public profile of a user
type UserResponse struct {
	ID        string    `json:"id"` // UUID
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// TokenResponse represents the response after successful authentication
type TokenResponse struct {
	AccessToken string       `json:"access_token"` // JWT token
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // seconds
	User        UserResponse `json:"user"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

func NewUserResponse(u *entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}
