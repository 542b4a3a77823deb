package middleware

import (
	"net/http"
	"strings"

	"darimaids/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BearerAuth requires a backend-issued access token. The token is kept
// in the context for forwarding; its email and role claims are exposed
// too. With an empty secret only expiry is checked, the backend remains
// the authority on the signature.
func BearerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if !strings.HasPrefix(authHeader, "Bearer ") || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}

		claims, err := utils.ParseTokenClaims(tokenString, secret)
		if err != nil {
			zap.L().Debug("Rejected bearer token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(utils.ContextTokenKey, tokenString)
		c.Set(utils.ContextEmailKey, claims.Email)
		c.Set(utils.ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose token role is set and not in roles.
// Tokens without a role claim pass; the backend enforces roles as well.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(utils.ContextRoleKey)
		if role == "" {
			c.Next()
			return
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
	}
}
