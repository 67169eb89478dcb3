package handler

import (
	"net/http"
	"slices"

	"github.com/Rrahullkumar/shushiman/internal/middleware"
	"github.com/Rrahullkumar/shushiman/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type registerOwnerRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	RestaurantName string `json:"restaurantName" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	errs    *ErrorResponder
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, errs *ErrorResponder) *AuthHandler {
	return &AuthHandler{service: s, errs: errs}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.RespondBinding(c, err)
		return
	}

	res, err := h.service.RegisterCustomer(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.errs.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.RespondBinding(c, err)
		return
	}

	res, err := h.service.LoginCustomer(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (h *AuthHandler) RegisterOwner(c *gin.Context) {
	var req registerOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.RespondBinding(c, err)
		return
	}

	res, err := h.service.RegisterOwner(c.Request.Context(), service.RegisterOwnerInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		RestaurantName: req.RestaurantName,
	})
	if err != nil {
		h.errs.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Owner registered successfully",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (h *AuthHandler) LoginOwner(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.RespondBinding(c, err)
		return
	}

	res, err := h.service.LoginOwner(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Owner login successful",
		"token":   res.Token,
		"user":    res.User,
	})
}

// Me returns the identity carried by the caller's token
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := c.Get(middleware.AuthClaimsKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": claims})
}

// RegisterAuthRoutes registers auth routes. throttle runs before every
// credential-accepting endpoint.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, throttle ...gin.HandlerFunc) {
	throttled := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(slices.Clone(throttle), handler)
	}

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", throttled(h.Register)...)
		authGroup.POST("/login", throttled(h.Login)...)
		authGroup.POST("/owner/register", throttled(h.RegisterOwner)...)
		authGroup.POST("/owner/login", throttled(h.LoginOwner)...)
		authGroup.GET("/me", authMW, h.Me)
	}
}
