package model

import "time"

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

// User represents a customer or restaurant owner account
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Do not expose password hash in JSON responses
	Role           string    `json:"role"`
	RestaurantName *string   `json:"restaurantName,omitempty"` // Only set for owners
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// IsValidRole reports whether role is one of the known principal kinds.
func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleOwner
}
