package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Rrahullkumar/shushiman/internal/model"
	"github.com/Rrahullkumar/shushiman/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]*model.User // keyed by lowercase email
	findErr error
	// createErr, when set, is returned by Create instead of storing the user.
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	key := strings.ToLower(user.Email)
	if _, ok := r.users[key]; ok {
		return repository.ErrDuplicateEmail
	}
	user.ID = uuid.NewString()
	user.Email = key
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[key] = &stored
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.users[strings.ToLower(email)]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmailAndRole(ctx context.Context, email, role string) (*model.User, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil || u == nil || u.Role != role {
		return nil, err
	}
	return u, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeMenuRepo struct {
	items map[string]*model.MenuItem
	err   error
}

func newFakeMenuRepo(items ...model.MenuItem) *fakeMenuRepo {
	r := &fakeMenuRepo{items: map[string]*model.MenuItem{}}
	for i := range items {
		item := items[i]
		r.items[item.ID] = &item
	}
	return r
}

func (r *fakeMenuRepo) Create(_ context.Context, item *model.MenuItem) error {
	if r.err != nil {
		return r.err
	}
	item.ID = uuid.NewString()
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeMenuRepo) FindByID(_ context.Context, id string) (*model.MenuItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	if item, ok := r.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeMenuRepo) FindByIDs(_ context.Context, ids []string) (map[string]model.MenuItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	found := make(map[string]model.MenuItem)
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			found[id] = *item
		}
	}
	return found, nil
}

func (r *fakeMenuRepo) FindAll(_ context.Context, filters model.MenuFilters) ([]model.MenuItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	items := []model.MenuItem{}
	for _, item := range r.items {
		if filters.Category != nil && item.Category != *filters.Category {
			continue
		}
		if filters.AvailableOnly && !item.Available {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *fakeMenuRepo) Delete(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeOrderRepo struct {
	orders map[string]*model.Order
	err    error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*model.Order{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *model.Order) error {
	if r.err != nil {
		return r.err
	}
	order.ID = uuid.NewString()
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	if o, ok := r.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]model.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	orders := []model.Order{}
	for _, o := range r.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

func (r *fakeOrderRepo) FindByCustomer(_ context.Context, customerID string) ([]model.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	orders := []model.Order{}
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) (*model.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	o.Status = status
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

type recordedAttempts struct {
	mu       sync.Mutex
	attempts []string
}

func (r *recordedAttempts) RecordAuthAttempt(operation, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, operation+":"+result)
}
