package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackProducts_Dataset(t *testing.T) {
	products := FallbackProducts()
	require.Len(t, products, 8)

	featured := 0
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Images)
		assert.True(t, p.InStock)
		if p.Featured {
			featured++
		}
	}
	// la vitrina estática respeta el mismo tope que el catálogo vivo
	assert.Equal(t, 4, featured)

	// es una copia: mutar el resultado no toca el dataset
	products[0].Name = "mutated"
	assert.NotEqual(t, "mutated", FallbackProducts()[0].Name)
}

func TestFallbackEntries(t *testing.T) {
	entries := FallbackEntries()
	require.Len(t, entries, 8)

	assert.Equal(t, "Hombre Araña - Diseño Personalizado", entries[0].Title)
	assert.Equal(t, CategoryCustom, entries[0].Category)
	// "eventos" legacy se mapea a custom
	assert.Equal(t, CategoryCustom, entries[4].Category)
	assert.Equal(t, CategoryHome, entries[5].Category)

	for i, e := range entries {
		assert.Equal(t, i+1, e.OrderIndex)
		assert.True(t, e.IsActive)
	}
}

func TestFallbackEntry_RoundTrip(t *testing.T) {
	for _, p := range FallbackProducts() {
		entry := FallbackToEntry(p)
		back := EntryToFallback(entry)

		assert.Equal(t, p.ID, back.ID)
		assert.Equal(t, p.Name, back.Name)
		assert.Equal(t, p.Description, back.Description)
		assert.Equal(t, p.Images, back.Images)
		assert.Equal(t, p.Featured, back.Featured)
		assert.Equal(t, p.InStock, back.InStock)
		assert.Equal(t, p.OrderIndex, back.OrderIndex)
		assert.Equal(t, p.CreatedAt, back.CreatedAt)
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(FallbackEntries(), SourceFallback)

	assert.Equal(t, 8, stats.Total)
	assert.Equal(t, 8, stats.Active)
	assert.Equal(t, 4, stats.Featured)
	assert.Equal(t, SourceFallback, stats.Source)
	assert.Equal(t, 4, stats.ByCategory[CategoryBusiness])
	assert.Equal(t, 3, stats.ByCategory[CategoryCustom])
	assert.Equal(t, 1, stats.ByCategory[CategoryHome])
	// las categorías sin entradas aparecen en cero, no ausentes
	assert.Contains(t, stats.ByCategory, CategorySigns)
	assert.Equal(t, 0, stats.ByCategory[CategorySigns])
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, SourceLive)
	assert.Zero(t, stats.Total)
	assert.Len(t, stats.ByCategory, len(Categories()))
}
