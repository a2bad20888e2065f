package job

import (
	"context"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"cuadros-neon-backend/internal/domains/catalog"
)

// RefreshHandler normaliza las referencias de imagen guardadas: los documentos
// viejos traen paths locales (/images/x.jpeg) de la versión estática del sitio,
// que se reescriben a keys del bucket para que el resolver los firme.
// Corre programado; cada pasada es idempotente.
type RefreshHandler struct {
	repo catalog.Repository
}

func NewRefreshHandler(repo catalog.Repository) *RefreshHandler {
	return &RefreshHandler{repo: repo}
}

func (h *RefreshHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	raws, err := h.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	updated := 0
	for _, raw := range raws {
		refs := raw.Record.CoalesceImages()
		normalized, changed := normalizeRefs(refs)
		if !changed {
			continue
		}

		patch := catalog.Record{Imagenes: &normalized}
		if _, err := h.repo.Update(ctx, raw.ID, patch); err != nil {
			// Seguimos con el resto: un documento trabado no frena la pasada.
			log.Warn().Err(err).Str("entry_id", raw.ID).Msg("image refresh: update failed")
			continue
		}
		updated++
	}

	log.Info().
		Int("scanned", len(raws)).
		Int("updated", updated).
		Msg("Catalog image references refreshed")

	return nil
}

// normalizeRefs reescribe solo los refs locales legacy. Las URLs http(s)
// y los keys ya normalizados quedan como están.
func normalizeRefs(refs []string) ([]string, bool) {
	normalized := make([]string, len(refs))
	changed := false

	for i, ref := range refs {
		trimmed := strings.TrimSpace(ref)
		if trimmed == "" ||
			strings.HasPrefix(trimmed, "http://") ||
			strings.HasPrefix(trimmed, "https://") ||
			strings.HasPrefix(trimmed, "gallery/") {
			normalized[i] = trimmed
			if trimmed != ref {
				changed = true
			}
			continue
		}

		normalized[i] = catalog.NormalizeImageKey(trimmed)
		if normalized[i] != ref {
			changed = true
		}
	}

	return normalized, changed
}
