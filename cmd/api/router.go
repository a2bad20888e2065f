package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cuadros-neon-backend/internal/shared/middleware"
	"cuadros-neon-backend/internal/shared/response"
	"cuadros-neon-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCatalogRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// CATALOG (público, sin auth)
// ========================================
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cat := v1.Group("/catalog")
	{
		cat.GET("", c.CatalogHandler.GetCatalog)
		cat.GET("/products", c.CatalogHandler.GetProducts)
		cat.GET("/featured", c.CatalogHandler.GetFeatured)
		cat.GET("/search", c.CatalogHandler.Search)
		cat.GET("/stats", c.CatalogHandler.GetStats)
		// Al final: el wildcard :id no debe comerse las rutas fijas.
		cat.GET("/:id", c.CatalogHandler.GetByID)
	}
}

// ========================================
// ADMIN (JWT + allow-list)
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin/catalog")
	admin.Use(
		middleware.AuthMiddleware(c.JWTManager, c.Config.Auth),
		middleware.AdminMiddleware(c.Config.Auth),
	)
	{
		admin.GET("", c.CatalogHandler.AdminList)
		admin.POST("", c.CatalogHandler.Create)
		admin.GET("/next-order-index", c.CatalogHandler.NextOrderIndex)
		admin.PUT("/reorder", c.CatalogHandler.Reorder)
		admin.PATCH("/:id", c.CatalogHandler.Update)
		admin.DELETE("/:id", c.CatalogHandler.Delete)
		admin.PUT("/:id/featured", c.CatalogHandler.SetFeatured)
		admin.PUT("/:id/active", c.CatalogHandler.SetActive)
		admin.POST("/:id/images", c.UploadHandler.Upload)
	}
}

// healthCheckHandler verifica database y cache.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = err.Error()
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = err.Error()
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		response.Success(ctx, status, gin.H{
			"status":   "up",
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
