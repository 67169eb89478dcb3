package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rrahullkumar/shushiman/internal/model"
	"github.com/Rrahullkumar/shushiman/internal/repository"

	"github.com/google/uuid"
)

// MenuService defines operations for the restaurant menu
type MenuService interface {
	CreateMenuItem(ctx context.Context, ownerID string, req model.CreateMenuItemRequest) (*model.MenuItem, error)
	ListMenuItems(ctx context.Context, filters model.MenuFilters) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

type menuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(repo repository.MenuRepository) MenuService {
	return &menuService{repo: repo}
}

func (s *menuService) CreateMenuItem(ctx context.Context, ownerID string, req model.CreateMenuItemRequest) (*model.MenuItem, error) {
	missing := missingFields(map[string]string{"name": req.Name, "category": req.Category}, "name", "category")
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	if req.Price <= 0 {
		return nil, &ValidationError{Message: "price must be greater than zero"}
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &model.MenuItem{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
		Image:       req.Image,
		Available:   available,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item in repo: %w", err)
	}
	return item, nil
}

func (s *menuService) ListMenuItems(ctx context.Context, filters model.MenuFilters) ([]model.MenuItem, error) {
	items, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &ValidationError{Message: "invalid menu item ID"}
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &ValidationError{Message: "invalid menu item ID"}
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if !deleted {
		return ErrMenuItemNotFound
	}
	return nil
}
