package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rrahullkumar/shushiman/internal/middleware"
	"github.com/Rrahullkumar/shushiman/internal/model"
	"github.com/Rrahullkumar/shushiman/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestResponder(exposeDetails bool) *ErrorResponder {
	logger, _ := logtest.NewNullLogger()
	logger.SetLevel(logrus.PanicLevel)
	return NewErrorResponder(logger, exposeDetails)
}

// withIdentity stands in for the JWT middleware
func withIdentity(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AuthUserKey, userID)
		c.Set(middleware.AuthRoleKey, role)
		c.Next()
	}
}

const testSecret = "handler-test-secret"

func performRequest(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return performAuthedRequest(t, r, method, path, "", body)
}

func performAuthedRequest(t *testing.T, r http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

type stubAuthService struct {
	registerFn      func(context.Context, service.RegisterInput) (*service.AuthResult, error)
	loginFn         func(context.Context, string, string) (*service.AuthResult, error)
	registerOwnerFn func(context.Context, service.RegisterOwnerInput) (*service.AuthResult, error)
	loginOwnerFn    func(context.Context, string, string) (*service.AuthResult, error)
}

func (s *stubAuthService) RegisterCustomer(ctx context.Context, in service.RegisterInput) (*service.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) LoginCustomer(ctx context.Context, email, password string) (*service.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) RegisterOwner(ctx context.Context, in service.RegisterOwnerInput) (*service.AuthResult, error) {
	return s.registerOwnerFn(ctx, in)
}

func (s *stubAuthService) LoginOwner(ctx context.Context, email, password string) (*service.AuthResult, error) {
	return s.loginOwnerFn(ctx, email, password)
}

type stubMenuService struct {
	items   map[string]*model.MenuItem
	filters model.MenuFilters
	err     error
}

func (s *stubMenuService) CreateMenuItem(_ context.Context, ownerID string, req model.CreateMenuItemRequest) (*model.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.MenuItem{ID: "m-new", OwnerID: ownerID, Name: req.Name, Price: req.Price, Category: req.Category, Available: true}, nil
}

func (s *stubMenuService) ListMenuItems(_ context.Context, filters model.MenuFilters) ([]model.MenuItem, error) {
	s.filters = filters
	if s.err != nil {
		return nil, s.err
	}
	items := []model.MenuItem{}
	for _, item := range s.items {
		items = append(items, *item)
	}
	return items, nil
}

func (s *stubMenuService) GetMenuItem(_ context.Context, id string) (*model.MenuItem, error) {
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, service.ErrMenuItemNotFound
}

func (s *stubMenuService) DeleteMenuItem(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return service.ErrMenuItemNotFound
	}
	delete(s.items, id)
	return nil
}

type stubOrderService struct {
	placeFn  func(context.Context, string, model.PlaceOrderRequest) (*model.Order, error)
	listFn   func(context.Context, string, string) ([]model.Order, error)
	updateFn func(context.Context, string, string, string) (*model.Order, error)
	cancelFn func(context.Context, string, string, string) error
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, customerID string, req model.PlaceOrderRequest) (*model.Order, error) {
	return s.placeFn(ctx, customerID, req)
}

func (s *stubOrderService) ListOrders(ctx context.Context, userID, userRole string) ([]model.Order, error) {
	return s.listFn(ctx, userID, userRole)
}

func (s *stubOrderService) UpdateOrderStatus(ctx context.Context, orderID, userRole, status string) (*model.Order, error) {
	return s.updateFn(ctx, orderID, userRole, status)
}

func (s *stubOrderService) CancelOrder(ctx context.Context, orderID, userID, userRole string) error {
	return s.cancelFn(ctx, orderID, userID, userRole)
}
