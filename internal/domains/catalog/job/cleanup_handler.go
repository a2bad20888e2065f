package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"cuadros-neon-backend/internal/infrastructure/storage"
)

// CleanupHandler borra los blobs de una entrada eliminada del catálogo.
// Corre después del delete del documento, así el borrado de la API
// no espera al storage.
type CleanupHandler struct {
	blobs BlobStore
}

func NewCleanupHandler(blobs BlobStore) *CleanupHandler {
	return &CleanupHandler{blobs: blobs}
}

func (h *CleanupHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload ImageCleanupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ImageCleanup payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	prefix := storage.GalleryPrefix + payload.EntryID + "/"

	log.Info().
		Str("entry_id", payload.EntryID).
		Str("prefix", prefix).
		Msg("Cleaning up catalog entry blobs")

	if err := h.blobs.DeleteByPrefix(ctx, prefix); err != nil {
		return fmt.Errorf("cleanup blobs %s: %w", prefix, err)
	}

	return nil
}
