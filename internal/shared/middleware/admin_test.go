package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"cuadros-neon-backend/internal/config"
)

func adminTestRouter(authCfg config.AuthConfig, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if email != "" {
			c.Set("userEmail", email)
		}
	})
	r.Use(AdminMiddleware(authCfg))
	r.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAdminMiddleware(t *testing.T) {
	authCfg := config.AuthConfig{
		AdminEmails:  []string{"admin@example.com"},
		RequireAdmin: true,
	}

	tests := []struct {
		name       string
		cfg        config.AuthConfig
		email      string
		wantStatus int
	}{
		{"allowed email", authCfg, "admin@example.com", http.StatusOK},
		{"unknown email", authCfg, "intruder@example.com", http.StatusForbidden},
		{"missing email", authCfg, "", http.StatusForbidden},
		{
			"guard disabled lets everything through",
			config.AuthConfig{RequireAdmin: false},
			"",
			http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)

			adminTestRouter(tt.cfg, tt.email).ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
