package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rrahullkumar/shushiman/internal/model"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderRowColumns = []string{"id", "customer_id", "items", "total", "status", "created_at", "updated_at"}

func TestOrderRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)
	now := time.Now()
	customerID := uuid.NewString()
	items := []model.OrderItem{{MenuItemID: uuid.NewString(), Name: "Ebi", Quantity: 2, Price: 500}}

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(pgxmock.AnyArg(), customerID, items, int64(1000), model.OrderStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	order := &model.Order{CustomerID: customerID, Items: items, Total: 1000, Status: model.OrderStatusPending}
	require.NoError(t, repo.Create(context.Background(), order))
	assert.NotEmpty(t, order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByCustomer(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)
	now := time.Now()
	customerID := uuid.NewString()
	items := []model.OrderItem{{MenuItemID: uuid.NewString(), Name: "Ebi", Quantity: 1, Price: 500}}

	mock.ExpectQuery(`FROM orders WHERE customer_id = \$1 ORDER BY created_at DESC`).
		WithArgs(customerID).
		WillReturnRows(pgxmock.NewRows(orderRowColumns).
			AddRow(uuid.NewString(), customerID, items, int64(500), model.OrderStatusPending, now, now))

	orders, err := repo.FindByCustomer(context.Background(), customerID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, customerID, orders[0].CustomerID)
	assert.Equal(t, items, orders[0].Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindAll_QueryError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)

	mock.ExpectQuery("FROM orders ORDER BY").WillReturnError(errors.New("timeout"))

	orders, err := repo.FindAll(context.Background())
	assert.Nil(t, orders)
	assert.ErrorContains(t, err, "failed to query orders")
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)
	now := time.Now()
	id := uuid.NewString()

	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(model.OrderStatusPreparing, id).
		WillReturnRows(pgxmock.NewRows(orderRowColumns).
			AddRow(id, uuid.NewString(), []model.OrderItem{}, int64(0), model.OrderStatusPreparing, now, now))

	order, err := repo.UpdateStatus(context.Background(), id, model.OrderStatusPreparing)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, model.OrderStatusPreparing, order.Status)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)

	mock.ExpectQuery("UPDATE orders SET status").WillReturnRows(pgxmock.NewRows(orderRowColumns))

	order, err := repo.UpdateStatus(context.Background(), uuid.NewString(), model.OrderStatusReady)
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)
	id := uuid.NewString()

	mock.ExpectExec("DELETE FROM orders").WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
