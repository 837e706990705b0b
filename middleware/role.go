package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to the named roles. Must run after
// JWTAuthMiddleware, which puts "role" into the context.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		role, _ := roleValue.(string)
		if !exists || !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": roleMessage(roles)})
			return
		}
		c.Next()
	}
}

func roleMessage(roles []string) string {
	if len(roles) == 1 {
		return roles[0] + " access required"
	}
	msg := roles[0]
	for _, role := range roles[1:] {
		msg += " or " + role
	}
	return msg + " access required"
}
