package handler

import (
	"net/http"
	"strconv"

	"github.com/Rrahullkumar/shushiman/internal/model"
	"github.com/Rrahullkumar/shushiman/internal/service"

	"github.com/gin-gonic/gin"
)

// MenuHandler handles menu related requests
type MenuHandler struct {
	service service.MenuService
	errs    *ErrorResponder
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(s service.MenuService, errs *ErrorResponder) *MenuHandler {
	return &MenuHandler{service: s, errs: errs}
}

func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	var filters model.MenuFilters
	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}
	if availableParam := c.Query("available"); availableParam != "" {
		available, err := strconv.ParseBool(availableParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid value for 'available', use true or false"})
			return
		}
		filters.AvailableOnly = available
	}

	items, err := h.service.ListMenuItems(c.Request.Context(), filters)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	item, err := h.service.GetMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	ownerID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.RespondBinding(c, err)
		return
	}

	item, err := h.service.CreateMenuItem(c.Request.Context(), ownerID, req)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.service.DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		h.errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

// RegisterMenuRoutes registers menu routes; reads are public, writes are owner-only
func (h *MenuHandler) RegisterMenuRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, ownerMW gin.HandlerFunc) {
	menuRoutes := rg.Group("/menu")
	{
		menuRoutes.GET("", h.ListMenuItems)
		menuRoutes.GET("/:id", h.GetMenuItem)
		menuRoutes.POST("", authMW, ownerMW, h.CreateMenuItem)
		menuRoutes.DELETE("/:id", authMW, ownerMW, h.DeleteMenuItem)
	}
}
