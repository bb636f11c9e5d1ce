package middleware

import (
	"github.com/gin-gonic/gin"

	"virtualbiblio-backend/internal/shared/response"
)

// RoleAdmin is the role string that gates privileged endpoints. Roles are
// stored as free text; every comparison goes through this constant.
const RoleAdmin = "admin"

// AdminMiddleware requires the role claim set by AuthMiddleware to be "admin".
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(CtxRole)
		if !exists {
			response.Forbidden(c, "Acceso denegado: se requiere rol de administrador")
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || role != RoleAdmin {
			response.Forbidden(c, "Acceso denegado: se requiere rol de administrador")
			c.Abort()
			return
		}

		c.Next()
	}
}
