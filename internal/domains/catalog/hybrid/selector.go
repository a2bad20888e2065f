// Package hybrid decide de dónde servir el catálogo: la lectura en vivo
// del backend o el dataset estático embebido, igual que hacía el storefront
// cuando el proyecto todavía no tenía datos cargados.
package hybrid

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"cuadros-neon-backend/internal/domains/catalog"
)

// LiveSource es la lectura en vivo (el service sobre el repositorio).
type LiveSource interface {
	ActiveEntries(ctx context.Context) ([]catalog.Entry, error)
}

type Selector struct {
	live            LiveSource
	fetchTimeout    time.Duration
	fallbackEnabled bool
}

func NewSelector(live LiveSource, fetchTimeout time.Duration, fallbackEnabled bool) *Selector {
	return &Selector{
		live:            live,
		fetchTimeout:    fetchTimeout,
		fallbackEnabled: fallbackEnabled,
	}
}

// Catalog devuelve las entradas con su fuente. La decisión se re-evalúa en
// CADA llamada, nunca se cachea: apenas el backend tenga datos, se sirven.
// Backend con error o vacío => fallback (si está habilitado).
func (s *Selector) Catalog(ctx context.Context) (catalog.Catalog, error) {
	liveCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	entries, err := s.live.ActiveEntries(liveCtx)
	if err == nil && len(entries) > 0 {
		return catalog.Catalog{Entries: entries, Source: catalog.SourceLive}, nil
	}

	if err != nil {
		log.Warn().Err(err).Msg("live catalog unavailable")
		if !s.fallbackEnabled {
			return catalog.Catalog{}, catalog.ErrBackendUnavailable
		}
	}

	if !s.fallbackEnabled {
		// Backend sano pero vacío y sin fallback: vacío es un resultado válido.
		return catalog.Catalog{Entries: []catalog.Entry{}, Source: catalog.SourceLive}, nil
	}

	log.Info().Int("items", len(catalog.FallbackEntries())).Msg("serving fallback catalog")
	return catalog.Catalog{Entries: catalog.FallbackEntries(), Source: catalog.SourceFallback}, nil
}

// Featured filtra destacadas sobre el resultado híbrido, tope MaxFeatured,
// por orderIndex. Misma regla para ambas fuentes.
func (s *Selector) Featured(ctx context.Context) (catalog.Catalog, error) {
	result, err := s.Catalog(ctx)
	if err != nil {
		return catalog.Catalog{}, err
	}

	featured := []catalog.Entry{}
	for _, e := range result.Entries {
		if e.IsFeatured && e.IsActive {
			featured = append(featured, e)
		}
	}

	// Las entradas ya vienen por orderIndex de ambas fuentes.
	if len(featured) > catalog.MaxFeatured {
		featured = featured[:catalog.MaxFeatured]
	}

	return catalog.Catalog{Entries: featured, Source: result.Source}, nil
}

// EntryByID busca por id dentro del resultado híbrido.
// (nil, source, nil) cuando no está: ausente no es error.
func (s *Selector) EntryByID(ctx context.Context, id string) (*catalog.Entry, catalog.Source, error) {
	result, err := s.Catalog(ctx)
	if err != nil {
		return nil, "", err
	}

	for i := range result.Entries {
		if result.Entries[i].ID == id {
			return &result.Entries[i], result.Source, nil
		}
	}

	return nil, result.Source, nil
}
