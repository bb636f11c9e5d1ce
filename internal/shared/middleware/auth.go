package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"virtualbiblio-backend/internal/shared/response"
	"virtualbiblio-backend/pkg/jwt"
)

// Context keys populated by AuthMiddleware.
const (
	CtxUserID = "userID"
	CtxName   = "name"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// AuthMiddleware validates the bearer token and stashes the claims in the
// request context. Logout is client-side only; tokens stay valid until expiry.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxName, claims.Name)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

// UserID reads the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
