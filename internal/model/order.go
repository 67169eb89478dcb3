package model

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// IsValidOrderStatus reports whether status is a known order status.
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a priced line of an order, captured at order time
type OrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"` // Unit price in cents
}

// Order represents a customer's order
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Items      []OrderItem `json:"items"`
	Total      int64       `json:"total"` // In cents
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// OrderLineRequest references a menu item by id
type OrderLineRequest struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gte=1"`
}

// PlaceOrderRequest is used for placing a new order
type PlaceOrderRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest is used by owners to move an order along
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
