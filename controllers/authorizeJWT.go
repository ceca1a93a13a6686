package controllers

import (
	"sufra/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to the given console roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, role, err := utils.GetJWTClaim(c)
		if err != nil {
			unauthorized(c)
			c.Abort()
			return
		}
		allowed := false
		for _, r := range roles {
			if r == role {
				allowed = true
				break
			}
		}
		if !allowed {
			unauthorized(c)
			c.Abort()
			return
		}
		c.Set("email", email)
		c.Set("role", role)
		c.Next()
	}
}
