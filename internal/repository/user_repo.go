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

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByEmailAndRole(ctx context.Context, email, role string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, role, restaurant_name, created_at, updated_at`

// Create inserts a new user, assigning its ID. Emails are stored lowercase.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.NewString()
	user.Email = strings.ToLower(user.Email)

	sql := `INSERT INTO users (id, name, email, password_hash, role, restaurant_name)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.RestaurantName).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email, ignoring case
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	user, err := scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByEmailAndRole retrieves a user by email (ignoring case) holding the given role
func (r *userRepository) FindByEmailAndRole(ctx context.Context, email, role string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) AND role = $2`
	user, err := scanUser(r.db.QueryRow(ctx, sql, email, role))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email and role: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// scanUser returns nil, nil when the row does not exist; the service layer handles it
func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.RestaurantName, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
