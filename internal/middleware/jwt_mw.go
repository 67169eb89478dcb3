package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Rrahullkumar/shushiman/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey   = "authUser"
	AuthRoleKey   = "authRole"
	AuthNameKey   = "authName"
	AuthClaimsKey = "authClaims"
)

const (
	msgNoToken      = "no token provided"
	msgInvalidToken = "invalid token"
	msgBadFormat    = "invalid token format"
	msgTokenExpired = "token expired, please login again"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgNoToken})
			return
		}

		// Scheme is case-sensitive: "bearer x" is rejected.
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgBadFormat})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgTokenExpired})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgInvalidToken})
			return
		}

		if claims.ExpiresAt != nil && !jwtUtil.Now().Before(claims.ExpiresAt.Time) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgTokenExpired})
			return
		}

		// Set user information in context
		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthRoleKey, claims.Role)
		c.Set(AuthNameKey, claims.Name)
		c.Set(AuthClaimsKey, claims)

		c.Next()
	}
}
