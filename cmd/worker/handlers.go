package main

import (
	"github.com/hibiken/asynq"

	"cuadros-neon-backend/internal/domains/catalog/job"
	"cuadros-neon-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	processImage *job.ProcessImageHandler
	cleanup      *job.CleanupHandler
	refresh      *job.RefreshHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		processImage: job.NewProcessImageHandler(c.Storage, c.ImageProcessor),
		cleanup:      job.NewCleanupHandler(c.Storage),
		refresh:      job.NewRefreshHandler(c.CatalogRepo),
	}
}

// RegisterHandlers registers all handlers with the mux
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(job.TypeImageProcess, r.processImage.ProcessTask)
	mux.HandleFunc(job.TypeImageCleanup, r.cleanup.ProcessTask)
	mux.HandleFunc(job.TypeImageRefresh, r.refresh.ProcessTask)
}
