package middleware

import (
	"net/http"
	"slices"

	"github.com/Rrahullkumar/shushiman/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(AuthRoleKey)
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not found in token"})
			return
		}

		if !slices.Contains(allowedRoles, userRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// OwnerMiddleware allows only restaurant owners
func OwnerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleOwner)
}

// CustomerMiddleware allows only customers
func CustomerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleCustomer)
}
