package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Rrahullkumar/shushiman/internal/model"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menuRowColumns = []string{"id", "owner_id", "name", "description", "price", "category", "image", "available", "created_at", "updated_at"}

func TestMenuRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMenuRepository(mock)
	now := time.Now()
	ownerID := uuid.NewString()

	item := &model.MenuItem{OwnerID: ownerID, Name: "Salmon Nigiri", Price: 650, Category: "nigiri", Available: true}

	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs(pgxmock.AnyArg(), ownerID, "Salmon Nigiri", (*string)(nil), int64(650), "nigiri", (*string)(nil), true).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Create(context.Background(), item))
	assert.NotEmpty(t, item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepository_FindAll_WithFilters(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMenuRepository(mock)
	now := time.Now()
	category := "maki"

	mock.ExpectQuery(`WHERE category = \$1 AND available = TRUE ORDER BY category, name`).
		WithArgs("maki").
		WillReturnRows(pgxmock.NewRows(menuRowColumns).
			AddRow(uuid.NewString(), uuid.NewString(), "Cucumber Roll", (*string)(nil), int64(400), "maki", (*string)(nil), true, now, now).
			AddRow(uuid.NewString(), uuid.NewString(), "Tuna Roll", (*string)(nil), int64(550), "maki", (*string)(nil), true, now, now))

	items, err := repo.FindAll(context.Background(), model.MenuFilters{Category: &category, AvailableOnly: true})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Tuna Roll", items[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepository_FindAll_Empty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMenuRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM menu_items ORDER BY").
		WillReturnRows(pgxmock.NewRows(menuRowColumns))

	items, err := repo.FindAll(context.Background(), model.MenuFilters{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMenuRepository_FindByIDs(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMenuRepository(mock)
	now := time.Now()
	id1, id2 := uuid.NewString(), uuid.NewString()

	mock.ExpectQuery(`WHERE id = ANY\(\$1\)`).
		WithArgs([]string{id1, id2}).
		WillReturnRows(pgxmock.NewRows(menuRowColumns).
			AddRow(id1, uuid.NewString(), "Ebi", (*string)(nil), int64(500), "nigiri", (*string)(nil), true, now, now))

	items, err := repo.FindByIDs(context.Background(), []string{id1, id2})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Ebi", items[id1].Name)
}

func TestMenuRepository_FindByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMenuRepository(mock)

	mock.ExpectQuery("FROM menu_items WHERE id").WillReturnRows(pgxmock.NewRows(menuRowColumns))

	item, err := repo.FindByID(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestMenuRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewMenuRepository(mock)
	id := uuid.NewString()

	mock.ExpectExec("DELETE FROM menu_items").WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM menu_items").WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
