package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSigner cuenta llamadas y permite forzar errores por key.
type stubSigner struct {
	mu      sync.Mutex
	calls   []string
	failAll bool
}

func (s *stubSigner) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, key)
	s.mu.Unlock()

	if s.failAll {
		return "", errors.New("minio unreachable")
	}
	return "https://cdn.example.com/" + key + "?sig=abc", nil
}

func (s *stubSigner) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func TestNormalizeImageKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare filename", "pizza.jpg", "gallery/pizza.jpg"},
		{"gallery key untouched", "gallery/pizza.jpg", "gallery/pizza.jpg"},
		{"nested gallery key untouched", "gallery/abc/x_original.jpg", "gallery/abc/x_original.jpg"},
		{"legacy local path", "/images/vela.jpeg", "gallery/vela.jpeg"},
		{"legacy without slash", "images/vela.jpeg", "gallery/vela.jpeg"},
		{"leading slash stripped", "/gallery/pizza.jpg", "gallery/pizza.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeImageKey(tt.input))
		})
	}
}

func TestImageResolver_Resolve(t *testing.T) {
	t.Run("empty ref resolves to empty", func(t *testing.T) {
		signer := &stubSigner{}
		r := NewImageResolver(signer, time.Hour)

		got, ok := r.Resolve(context.Background(), "")
		assert.True(t, ok)
		assert.Equal(t, "", got)
		assert.Zero(t, signer.callCount())
	})

	t.Run("http urls pass through without signing", func(t *testing.T) {
		signer := &stubSigner{}
		r := NewImageResolver(signer, time.Hour)

		for _, url := range []string{"http://x.com/a.jpg", "https://x.com/a.jpg"} {
			got, ok := r.Resolve(context.Background(), url)
			assert.True(t, ok)
			assert.Equal(t, url, got)
		}
		assert.Zero(t, signer.callCount())
	})

	t.Run("bucket key gets signed", func(t *testing.T) {
		signer := &stubSigner{}
		r := NewImageResolver(signer, time.Hour)

		got, ok := r.Resolve(context.Background(), "/images/vela.jpeg")
		assert.True(t, ok)
		assert.Equal(t, "https://cdn.example.com/gallery/vela.jpeg?sig=abc", got)
		require.Equal(t, 1, signer.callCount())
		assert.Equal(t, "gallery/vela.jpeg", signer.calls[0])
	})

	t.Run("signing failure degrades to original ref", func(t *testing.T) {
		signer := &stubSigner{failAll: true}
		r := NewImageResolver(signer, time.Hour)

		got, ok := r.Resolve(context.Background(), "/images/vela.jpeg")
		assert.False(t, ok)
		assert.Equal(t, "/images/vela.jpeg", got)
	})
}

func TestImageResolver_ResolveAll(t *testing.T) {
	signer := &stubSigner{}
	r := NewImageResolver(signer, time.Hour)

	refs := []string{"https://x.com/a.jpg", "", "gallery/b.jpg", "c.jpg"}
	got := r.ResolveAll(context.Background(), refs)

	require.Len(t, got, 4)
	assert.Equal(t, "https://x.com/a.jpg", got[0])
	assert.Equal(t, "", got[1])
	assert.Equal(t, "https://cdn.example.com/gallery/b.jpg?sig=abc", got[2])
	assert.Equal(t, "https://cdn.example.com/gallery/c.jpg?sig=abc", got[3])

	empty := r.ResolveAll(context.Background(), nil)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}
