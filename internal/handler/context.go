package handler

import (
	"errors"

	"github.com/Rrahullkumar/shushiman/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.AuthUserKey)
	if userID == "" {
		return "", errors.New("user ID not found in context")
	}
	return userID, nil
}

// Helper to get authenticated user role from context
func getAuthUserRole(c *gin.Context) (string, error) {
	role := c.GetString(middleware.AuthRoleKey)
	if role == "" {
		return "", errors.New("user role not found in context")
	}
	return role, nil
}
