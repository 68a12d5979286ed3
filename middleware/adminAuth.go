package middleware

import (
	"net/http"
	"strings"

	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards the admin-only routes (cancellations,
// schedule management). Tokens are issued out of band to salon staff.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if _, err := utils.ValidateToken(tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil || role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
