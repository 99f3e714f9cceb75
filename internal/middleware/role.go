package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookhub/internal/pkg/rbac"
	"bookhub/internal/pkg/response"
)

// RequireRoles gates a route to the given roles. Deny-by-default: a missing
// or unknown role fails the check.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !rbac.Allowed(role, allowed...) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly restricts a route to administrators.
func AdminOnly() gin.HandlerFunc {
	return RequireRoles("admin")
}
