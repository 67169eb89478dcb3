package service

import (
	"context"
	"fmt"

	"github.com/Rrahullkumar/shushiman/internal/model"
	"github.com/Rrahullkumar/shushiman/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// OrderService defines operations for customer orders
type OrderService interface {
	PlaceOrder(ctx context.Context, customerID string, req model.PlaceOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context, userID, userRole string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, userRole, status string) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID, userID, userRole string) error
}

type orderService struct {
	orders repository.OrderRepository
	menu   repository.MenuRepository
	log    logrus.FieldLogger
}

// NewOrderService creates a new OrderService
func NewOrderService(orders repository.OrderRepository, menu repository.MenuRepository, log logrus.FieldLogger) OrderService {
	return &orderService{orders: orders, menu: menu, log: log}
}

// PlaceOrder prices every line from the current menu; client prices are never trusted.
func (s *orderService) PlaceOrder(ctx context.Context, customerID string, req model.PlaceOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{Fields: []string{"items"}}
	}

	ids := make([]string, 0, len(req.Items))
	seen := make(map[string]bool, len(req.Items))
	for _, line := range req.Items {
		if _, err := uuid.Parse(line.MenuItemID); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid menu item ID: %q", line.MenuItemID)}
		}
		if line.Quantity < 1 {
			return nil, &ValidationError{Message: "quantity must be at least 1"}
		}
		if !seen[line.MenuItemID] {
			seen[line.MenuItemID] = true
			ids = append(ids, line.MenuItemID)
		}
	}

	menuItems, err := s.menu.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	order := &model.Order{
		CustomerID: customerID,
		Items:      make([]model.OrderItem, 0, len(req.Items)),
		Status:     model.OrderStatusPending,
	}
	for _, line := range req.Items {
		item, ok := menuItems[line.MenuItemID]
		if !ok {
			return nil, &ValidationError{Message: fmt.Sprintf("menu item %s not found", line.MenuItemID)}
		}
		if !item.Available {
			return nil, &ValidationError{Message: fmt.Sprintf("menu item %q is not available", item.Name)}
		}
		order.Items = append(order.Items, model.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			Price:      item.Price,
		})
		order.Total += item.Price * int64(line.Quantity)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repo: %w", err)
	}
	s.log.WithFields(logrus.Fields{"order_id": order.ID, "customer_id": customerID, "total": order.Total}).Info("order placed")
	return order, nil
}

// ListOrders returns every order for owners and only their own for customers
func (s *orderService) ListOrders(ctx context.Context, userID, userRole string) ([]model.Order, error) {
	var (
		orders []model.Order
		err    error
	)
	if userRole == model.RoleOwner {
		orders, err = s.orders.FindAll(ctx)
	} else {
		orders, err = s.orders.FindByCustomer(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID, userRole, status string) (*model.Order, error) {
	if userRole != model.RoleOwner {
		return nil, ErrForbidden
	}
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, &ValidationError{Message: "invalid order ID"}
	}
	if !model.IsValidOrderStatus(status) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid status: %q", status)}
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CancelOrder removes an order. Owners may cancel any order, customers only their own.
func (s *orderService) CancelOrder(ctx context.Context, orderID, userID, userRole string) error {
	if _, err := uuid.Parse(orderID); err != nil {
		return ErrOrderNotFound
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to get order for cancellation: %w", err)
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if userRole != model.RoleOwner && order.CustomerID != userID {
		return ErrForbidden
	}

	deleted, err := s.orders.Delete(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if !deleted {
		return ErrOrderNotFound
	}
	s.log.WithFields(logrus.Fields{"order_id": orderID, "by": userID}).Info("order cancelled")
	return nil
}
