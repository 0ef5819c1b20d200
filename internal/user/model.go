// Package user manages accounts: registration, credential checks and
// profile updates.
package user

import (
	"time"

	"github.com/MikeMC777/coffee-orders/internal/auth"
)

type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone,omitempty"`
	Roles        []auth.Role `json:"roles"`
	Address      string      `json:"address,omitempty"`
	City         string      `json:"city,omitempty"`
	PostalCode   string      `json:"postal_code,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (u *User) Identity() auth.Identity {
	return auth.Identity{ID: u.ID, Email: u.Email, Roles: u.Roles}
}

// RegisterRequest payload.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email      string `json:"email" example:"jane@example.com"`
	Password   string `json:"password" example:"secret123"`
	Name       string `json:"name" example:"Jane Customer"`
	Phone      string `json:"phone,omitempty" example:"555-0101"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// LoginRequest payload.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"secret123"`
}

// ProfileUpdate is a partial update; nil fields are left unchanged.
// swagger:model ProfileUpdate
type ProfileUpdate struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}

// AuthResponse is returned by register and the login endpoints.
// swagger:model AuthResponse
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
