package cache

import (
	"context"
	"time"
)

// Cache định nghĩa el contrato de la capa de cache.
// Permite cambiar la implementación (Redis, in-memory) sin tocar los services.
type Cache interface {
	// Get lee del cache y deserializa en dest.
	// found = false es cache miss: dest no se modifica.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set guarda value con TTL. ttl <= 0 significa sin expiración.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete borra keys del cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern borra todas las keys que matchean el glob pattern.
	// Usado para invalidar listados (catalog:list:*) tras una escritura.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifica la conexión.
	Ping(ctx context.Context) error
}
