package model

import "time"

// MenuItem is a dish offered by the restaurant
type MenuItem struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       int64     `json:"price"` // In cents
	Category    string    `json:"category"`
	Image       *string   `json:"image,omitempty"` // URL, uploads are handled elsewhere
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateMenuItemRequest is used for adding a dish to the menu
type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       int64   `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Image       *string `json:"image"`
	Available   *bool   `json:"available"` // Defaults to true when omitted
}

// MenuFilters narrows menu listings
type MenuFilters struct {
	Category      *string
	AvailableOnly bool
}
