package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rrahullkumar/shushiman/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MenuRepository defines operations for menu items
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]model.MenuItem, error)
	FindAll(ctx context.Context, filters model.MenuFilters) ([]model.MenuItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type menuRepository struct {
	db DBTX
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db DBTX) MenuRepository {
	return &menuRepository{db: db}
}

const menuColumns = `id, owner_id, name, description, price, category, image, available, created_at, updated_at`

// Create inserts a new menu item
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	item.ID = uuid.NewString()
	sql := `INSERT INTO menu_items (id, owner_id, name, description, price, category, image, available)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, item.ID, item.OwnerID, item.Name, item.Description, item.Price,
		item.Category, item.Image, item.Available).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

// FindByID retrieves a menu item by its ID
func (r *menuRepository) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	sql := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`
	item, err := scanMenuItem(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find menu item by ID: %w", err)
	}
	return item, nil
}

// FindByIDs retrieves the menu items with the given IDs, keyed by ID
func (r *menuRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.MenuItem, error) {
	sql := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items by IDs: %w", err)
	}
	defer rows.Close()

	items := make(map[string]model.MenuItem, len(ids))
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item row: %w", err)
		}
		items[item.ID] = *item
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu item rows: %w", err)
	}
	return items, nil
}

// FindAll retrieves menu items with optional filters
func (r *menuRepository) FindAll(ctx context.Context, filters model.MenuFilters) ([]model.MenuItem, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + menuColumns + ` FROM menu_items`)

	args := []interface{}{}
	var conditions []string

	if filters.Category != nil && *filters.Category != "" {
		args = append(args, *filters.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filters.AvailableOnly {
		conditions = append(conditions, "available = TRUE")
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY category, name")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item row: %w", err)
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu item rows: %w", err)
	}
	return items, nil
}

// Delete removes a menu item, reporting whether a row was deleted
func (r *menuRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	item := &model.MenuItem{}
	err := row.Scan(&item.ID, &item.OwnerID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.Image, &item.Available, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}
