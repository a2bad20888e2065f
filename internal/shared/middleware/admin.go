package middleware

import (
	"github.com/gin-gonic/gin"

	"cuadros-neon-backend/internal/config"
	"cuadros-neon-backend/internal/shared/response"
)

// AdminMiddleware autoriza contra la allow-list de emails de administración.
// No hay roles: un email está en la lista o no lo está.
func AdminMiddleware(authCfg config.AuthConfig) gin.HandlerFunc {
	allowed := make(map[string]bool, len(authCfg.AdminEmails))
	for _, email := range authCfg.AdminEmails {
		allowed[email] = true
	}

	return func(c *gin.Context) {
		if !authCfg.RequireAdmin {
			c.Next()
			return
		}

		email := c.GetString("userEmail")
		if email == "" || !allowed[email] {
			response.Forbidden(c, "Access denied: admin required")
			c.Abort()
			return
		}

		c.Next()
	}
}
