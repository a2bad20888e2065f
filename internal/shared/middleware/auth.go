package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"cuadros-neon-backend/internal/config"
	"cuadros-neon-backend/internal/shared/response"
	"cuadros-neon-backend/pkg/jwt"
)

// AuthMiddleware valida el JWT del header Authorization y deja el email
// del usuario en el context para el guard de administración.
// Con RequireAuth=false el guard se salta por completo (solo dev/test,
// igual que el bypass del panel original).
func AuthMiddleware(manager *jwt.Manager, authCfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authCfg.RequireAuth {
			c.Next()
			return
		}

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

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", strings.ToLower(claims.Email))

		c.Next()
	}
}
