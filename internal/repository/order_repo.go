package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rrahullkumar/shushiman/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepository defines operations for orders
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type orderRepository struct {
	db DBTX
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DBTX) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, customer_id, items, total, status, created_at, updated_at`

// Create inserts a new order; items are stored as JSONB
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	order.ID = uuid.NewString()
	sql := `INSERT INTO orders (id, customer_id, items, total, status)
            VALUES ($1, $2, $3, $4, $5) RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, order.ID, order.CustomerID, order.Items, order.Total, order.Status).
		Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindByID retrieves an order by its ID
func (r *orderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}
	return order, nil
}

// FindAll retrieves every order, newest first
func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.queryOrders(ctx, sql)
}

// FindByCustomer retrieves the orders placed by a customer, newest first
func (r *orderRepository) FindByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`
	return r.queryOrders(ctx, sql, customerID)
}

// UpdateStatus sets the status of an order, returning nil when it does not exist
func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	sql := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + orderColumns
	order, err := scanOrder(r.db.QueryRow(ctx, sql, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

// Delete removes an order, reporting whether a row was deleted
func (r *orderRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete order: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]model.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, *order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	order := &model.Order{}
	err := row.Scan(&order.ID, &order.CustomerID, &order.Items, &order.Total, &order.Status,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}
