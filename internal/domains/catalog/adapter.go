package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Adapter convierte documentos crudos (Record) en entradas canónicas (Entry).
// La adaptación NUNCA falla: un documento incompleto produce una entrada
// con zero values, no un error. Un registro roto no puede tirar el listado.
type Adapter struct {
	resolver *ImageResolver
}

func NewAdapter(resolver *ImageResolver) *Adapter {
	return &Adapter{resolver: resolver}
}

// Adapt normaliza un documento: coalescing por prioridad de alias,
// categoría canonical y resolución de imágenes en paralelo.
func (a *Adapter) Adapt(ctx context.Context, id string, rec Record, createdAt, updatedAt time.Time) Entry {
	price := rec.CoalescePrice()
	if price < 0 {
		price = 0
	}

	return Entry{
		ID:          id,
		Title:       rec.CoalesceTitle(),
		Description: rec.CoalesceDescription(),
		Price:       decimal.NewFromFloat(price),
		Images:      a.resolver.ResolveAll(ctx, rec.CoalesceImages()),
		Category:    MapToCategory(rec.CoalesceCategoryRaw()),
		IsFeatured:  rec.CoalesceFeatured(),
		IsActive:    rec.CoalesceActive(),
		OrderIndex:  rec.CoalesceOrderIndex(),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// RawEntry es un documento con su metadata, tal como sale del repositorio.
type RawEntry struct {
	ID        string
	Record    Record
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdaptAll adapta un listado completo, en paralelo entre entradas
// (cada una además resuelve sus imágenes en paralelo). Orden preservado.
func (a *Adapter) AdaptAll(ctx context.Context, raws []RawEntry) []Entry {
	entries := make([]Entry, len(raws))
	if len(raws) == 0 {
		return entries
	}

	var wg sync.WaitGroup
	for i, raw := range raws {
		wg.Add(1)
		go func(i int, raw RawEntry) {
			defer wg.Done()
			entries[i] = a.Adapt(ctx, raw.ID, raw.Record, raw.CreatedAt, raw.UpdatedAt)
		}(i, raw)
	}
	wg.Wait()

	return entries
}
