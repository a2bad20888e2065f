package hybrid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cuadros-neon-backend/internal/domains/catalog"
)

type fakeLiveSource struct {
	entries []catalog.Entry
	err     error
	calls   int
}

func (f *fakeLiveSource) ActiveEntries(_ context.Context) ([]catalog.Entry, error) {
	f.calls++
	return f.entries, f.err
}

func liveEntries(n int) []catalog.Entry {
	entries := make([]catalog.Entry, n)
	for i := range entries {
		entries[i] = catalog.Entry{
			ID:         string(rune('a' + i)),
			Title:      "Letrero",
			Category:   catalog.CategoryBusiness,
			IsActive:   true,
			OrderIndex: i + 1,
		}
	}
	return entries
}

func TestSelector_Catalog(t *testing.T) {
	t.Run("live data wins", func(t *testing.T) {
		live := &fakeLiveSource{entries: liveEntries(3)}
		s := NewSelector(live, time.Second, true)

		got, err := s.Catalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.SourceLive, got.Source)
		assert.Len(t, got.Entries, 3)
	})

	t.Run("empty live falls back", func(t *testing.T) {
		live := &fakeLiveSource{entries: []catalog.Entry{}}
		s := NewSelector(live, time.Second, true)

		got, err := s.Catalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.SourceFallback, got.Source)
		assert.Len(t, got.Entries, 8)
	})

	t.Run("live error falls back", func(t *testing.T) {
		live := &fakeLiveSource{err: errors.New("connection refused")}
		s := NewSelector(live, time.Second, true)

		got, err := s.Catalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.SourceFallback, got.Source)
		assert.Len(t, got.Entries, 8)
	})

	t.Run("live error without fallback surfaces", func(t *testing.T) {
		live := &fakeLiveSource{err: errors.New("connection refused")}
		s := NewSelector(live, time.Second, false)

		_, err := s.Catalog(context.Background())
		assert.ErrorIs(t, err, catalog.ErrBackendUnavailable)
	})

	t.Run("empty live without fallback is a valid empty result", func(t *testing.T) {
		live := &fakeLiveSource{entries: []catalog.Entry{}}
		s := NewSelector(live, time.Second, false)

		got, err := s.Catalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.SourceLive, got.Source)
		assert.Empty(t, got.Entries)
	})

	t.Run("decision re-evaluated per call", func(t *testing.T) {
		live := &fakeLiveSource{entries: []catalog.Entry{}}
		s := NewSelector(live, time.Second, true)

		got, err := s.Catalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.SourceFallback, got.Source)

		// el backend ahora tiene datos: la próxima lectura los sirve
		live.entries = liveEntries(1)
		got, err = s.Catalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.SourceLive, got.Source)
		assert.Equal(t, 2, live.calls)
	})
}

func TestSelector_Featured(t *testing.T) {
	t.Run("filters featured and caps the limit", func(t *testing.T) {
		entries := liveEntries(6)
		for i := range entries {
			entries[i].IsFeatured = true
		}
		entries[5].IsActive = false

		live := &fakeLiveSource{entries: entries}
		s := NewSelector(live, time.Second, true)

		got, err := s.Featured(context.Background())
		require.NoError(t, err)
		assert.Len(t, got.Entries, catalog.MaxFeatured)
		for _, e := range got.Entries {
			assert.True(t, e.IsFeatured)
			assert.True(t, e.IsActive)
		}
	})

	t.Run("fallback featured", func(t *testing.T) {
		live := &fakeLiveSource{entries: []catalog.Entry{}}
		s := NewSelector(live, time.Second, true)

		got, err := s.Featured(context.Background())
		require.NoError(t, err)
		assert.Equal(t, catalog.SourceFallback, got.Source)
		assert.Len(t, got.Entries, 4)
	})
}

func TestSelector_EntryByID(t *testing.T) {
	live := &fakeLiveSource{entries: liveEntries(2)}
	s := NewSelector(live, time.Second, true)

	entry, source, err := s.EntryByID(context.Background(), "b")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "b", entry.ID)
	assert.Equal(t, catalog.SourceLive, source)

	// ausente no es error
	entry, source, err = s.EntryByID(context.Background(), "zz")
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Equal(t, catalog.SourceLive, source)
}
