package handler

import (
	"net/http"

	"github.com/Rrahullkumar/shushiman/internal/model"
	"github.com/Rrahullkumar/shushiman/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order related requests
type OrderHandler struct {
	service service.OrderService
	errs    *ErrorResponder
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(s service.OrderService, errs *ErrorResponder) *OrderHandler {
	return &OrderHandler{service: s, errs: errs}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.RespondBinding(c, err)
		return
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), userID, req)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), userID, userRole)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	userRole, err := getAuthUserRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.RespondBinding(c, err)
		return
	}

	order, err := h.service.UpdateOrderStatus(c.Request.Context(), c.Param("id"), userRole, req.Status)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.CancelOrder(c.Request.Context(), c.Param("id"), userID, userRole); err != nil {
		h.errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
}

// RegisterOrderRoutes registers order routes
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, ownerMW gin.HandlerFunc) {
	orderRoutes := rg.Group("/orders")
	orderRoutes.Use(authMW) // All routes in this group require authentication
	{
		orderRoutes.POST("", h.PlaceOrder)
		// Service layer scopes customers to their own orders
		orderRoutes.GET("", h.ListOrders)
		orderRoutes.PUT("/:id", ownerMW, h.UpdateOrderStatus)
		// Service layer handles ownership for non-owners
		orderRoutes.DELETE("/:id", h.CancelOrder)
	}
}
