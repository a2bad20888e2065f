package catalog

import (
	"context"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// URLSigner firma URLs de lectura del blob store. La implementación real
// es el storage MinIO; los tests usan un stub.
type URLSigner interface {
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ImageResolver convierte referencias de imagen heterogéneas en URLs navegables.
// Los documentos guardan de todo: URLs completas, keys del bucket y paths
// locales legacy (/images/x.jpeg) de la versión estática del sitio.
type ImageResolver struct {
	signer URLSigner
	expiry time.Duration
}

func NewImageResolver(signer URLSigner, expiry time.Duration) *ImageResolver {
	return &ImageResolver{signer: signer, expiry: expiry}
}

// Resolve resuelve una referencia. Nunca falla: si no se puede firmar,
// degrada devolviendo la referencia original (resolved=false) y loguea warning.
// Las URLs http(s) pasan tal cual, sin tocar el blob store.
func (r *ImageResolver) Resolve(ctx context.Context, ref string) (string, bool) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", true
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed, true
	}

	key := NormalizeImageKey(trimmed)

	signed, err := r.signer.PresignedURL(ctx, key, r.expiry)
	if err != nil {
		log.Warn().
			Err(err).
			Str("ref", ref).
			Str("key", key).
			Msg("image resolution degraded, keeping original reference")
		return ref, false
	}

	return signed, true
}

// ResolveAll resuelve en paralelo preservando el orden. Nunca devuelve nil.
func (r *ImageResolver) ResolveAll(ctx context.Context, refs []string) []string {
	resolved := make([]string, len(refs))
	if len(refs) == 0 {
		return resolved
	}

	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref string) {
			defer wg.Done()
			resolved[i], _ = r.Resolve(ctx, ref)
		}(i, ref)
	}
	wg.Wait()

	return resolved
}

// NormalizeImageKey mapea una referencia no-URL a su key en el bucket.
// "/images/x.jpeg" (path local legacy) y "x.jpeg" terminan en "gallery/x.jpeg";
// un key que ya viene con el prefix se respeta.
func NormalizeImageKey(ref string) string {
	key := strings.TrimPrefix(strings.TrimSpace(ref), "/")

	if strings.HasPrefix(key, "gallery/") {
		return key
	}

	if strings.HasPrefix(key, "images/") {
		return "gallery/" + path.Base(key)
	}

	return "gallery/" + key
}
