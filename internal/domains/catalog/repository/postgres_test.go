package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuadros-neon-backend/internal/domains/catalog"
)

func TestNextFromMax(t *testing.T) {
	five := 5
	zero := 0

	tests := []struct {
		name string
		max  *int
		want int
	}{
		{"empty catalog starts at zero", nil, 0},
		{"after max five", &five, 6},
		{"after max zero", &zero, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextFromMax(tt.max))
		})
	}
}

func TestChunkOrders(t *testing.T) {
	makeOrders := func(n int) []catalog.EntryOrder {
		orders := make([]catalog.EntryOrder, n)
		for i := range orders {
			orders[i] = catalog.EntryOrder{ID: "e", OrderIndex: i}
		}
		return orders
	}

	t.Run("splits oversized reorder", func(t *testing.T) {
		chunks := chunkOrders(makeOrders(1250), 500)
		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 500)
		assert.Len(t, chunks[1], 500)
		assert.Len(t, chunks[2], 250)
		// el orden global se preserva a través de los chunks
		assert.Equal(t, 500, chunks[1][0].OrderIndex)
		assert.Equal(t, 1249, chunks[2][249].OrderIndex)
	})

	t.Run("exact multiple", func(t *testing.T) {
		chunks := chunkOrders(makeOrders(500), 500)
		require.Len(t, chunks, 1)
		assert.Len(t, chunks[0], 500)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, chunkOrders(nil, 500))
	})
}
