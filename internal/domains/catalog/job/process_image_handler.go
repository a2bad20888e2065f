package job

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// BlobStore es lo que los handlers necesitan del storage.
type BlobStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// VariantProcessor genera los tamaños derivados de una imagen.
type VariantProcessor interface {
	ProcessImage(data []byte) (map[string][]byte, error)
}

// ProcessImageHandler genera y sube las variantes (large/medium/thumbnail)
// de una imagen recién subida al catálogo.
type ProcessImageHandler struct {
	blobs     BlobStore
	processor VariantProcessor
}

func NewProcessImageHandler(blobs BlobStore, processor VariantProcessor) *ProcessImageHandler {
	return &ProcessImageHandler{blobs: blobs, processor: processor}
}

func (h *ProcessImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload ImageProcessPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ImageProcess payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("entry_id", payload.EntryID).
		Str("key", payload.ImageKey).
		Msg("Processing catalog image variants")

	original, err := h.blobs.Download(ctx, payload.ImageKey)
	if err != nil {
		return fmt.Errorf("download original %s: %w", payload.ImageKey, err)
	}

	variants, err := h.processor.ProcessImage(original)
	if err != nil {
		return fmt.Errorf("process image %s: %w", payload.ImageKey, err)
	}

	for name, data := range variants {
		key := variantKey(payload.ImageKey, name)
		if _, err := h.blobs.Upload(ctx, key, data, "image/jpeg"); err != nil {
			return fmt.Errorf("upload variant %s: %w", key, err)
		}
	}

	log.Info().
		Str("entry_id", payload.EntryID).
		Int("variants", len(variants)).
		Msg("Catalog image processed successfully")

	return nil
}

// variantKey: gallery/<entry>/<uuid>_original.jpg → gallery/<entry>/<uuid>_<variant>.jpg
func variantKey(originalKey, variant string) string {
	if strings.HasSuffix(originalKey, "_original.jpg") {
		return strings.TrimSuffix(originalKey, "_original.jpg") + "_" + variant + ".jpg"
	}
	return originalKey + "_" + variant + ".jpg"
}
