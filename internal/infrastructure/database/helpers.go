package database

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Ping verifica que la conexión siga viva. Usado por health checks.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close đóng pool. Idempotente: llamadas posteriores son no-op.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		return nil
	}

	log.Println("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Println("[DATABASE] Connection pool closed successfully")
	return nil
}

// PoolStats es un snapshot de las estadísticas del pool para monitoring.
type PoolStats struct {
	AcquireCount    int64
	AcquireDuration time.Duration
	AcquiredConns   int32
	IdleConns       int32
	MaxConns        int32
	TotalConns      int32
	NewConnsCount   int64
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquireCount:    raw.AcquireCount(),
		AcquireDuration: raw.AcquireDuration(),
		AcquiredConns:   raw.AcquiredConns(),
		IdleConns:       raw.IdleConns(),
		MaxConns:        raw.MaxConns(),
		TotalConns:      raw.TotalConns(),
		NewConnsCount:   raw.NewConnsCount(),
	}, nil
}
