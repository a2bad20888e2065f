package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cuadros-neon-backend/internal/domains/catalog"
	"cuadros-neon-backend/pkg/database"
	"cuadros-neon-backend/pkg/logger"
)

// Expresiones sobre el JSONB. COALESCE modela exactamente el ?? del vocabulario
// mixto: salta claves ausentes (NULL) pero respeta un false presente.
const (
	featuredExpr = `COALESCE((data->>'destacado')::boolean, (data->>'featured')::boolean, (data->>'isFeatured')::boolean, false)`
	activeExpr   = `COALESCE((data->>'isActive')::boolean, true)`
	orderExpr    = `COALESCE((data->>'orderIndex')::int, 0)`
	categoryExpr = `lower(COALESCE(data->>'categoria', data->>'category', ''))`
)

// reorderChunkSize limita el tamaño de cada batch dentro de la transacción
// de reordenamiento (el límite clásico de writeBatch era 500).
const reorderChunkSize = 500

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository tạo repository instance sobre la tabla gallery_items.
func NewPostgresRepository(pool *pgxpool.Pool) catalog.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, filters catalog.Filters, sort catalog.Sort) ([]catalog.RawEntry, error) {
	query := `SELECT id, data, created_at, updated_at FROM gallery_items WHERE true`
	var args []interface{}

	if filters.IsFeatured != nil {
		args = append(args, *filters.IsFeatured)
		query += fmt.Sprintf(" AND %s = $%d", featuredExpr, len(args))
	}
	if filters.IsActive != nil {
		args = append(args, *filters.IsActive)
		query += fmt.Sprintf(" AND %s = $%d", activeExpr, len(args))
	}
	if filters.Category != nil {
		args = append(args, catalog.CategoryAliases(*filters.Category))
		query += fmt.Sprintf(" AND %s = ANY($%d)", categoryExpr, len(args))
	}

	switch sort.Field {
	case catalog.SortByCreatedAt:
		query += " ORDER BY created_at"
	default:
		query += " ORDER BY " + orderExpr
	}
	if sort.Descending {
		query += " DESC"
	}
	query += ", id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("List: database error", err)
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	defer rows.Close()

	return scanRawEntries(rows)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]catalog.RawEntry, error) {
	return r.List(ctx, catalog.Filters{}, catalog.Sort{Field: catalog.SortByOrderIndex})
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*catalog.RawEntry, error) {
	const query = `SELECT id, data, created_at, updated_at FROM gallery_items WHERE id = $1`

	raw, err := scanRawEntry(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		// Ausente no es error: el caller decide si eso es 404.
		return nil, nil
	}
	if err != nil {
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get catalog entry %s: %w", id, err)
	}

	return raw, nil
}

func (r *postgresRepository) Create(ctx context.Context, rec catalog.Record) (*catalog.RawEntry, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*catalog.RawEntry, error) {
		// Sin orderIndex explícito la entrada va al final de la vitrina.
		if rec.OrderIndex == nil {
			var max *int
			err := tx.QueryRow(ctx, `SELECT MAX(`+orderExpr+`) FROM gallery_items`).Scan(&max)
			if err != nil {
				return nil, fmt.Errorf("failed to compute next order index: %w", err)
			}
			next := nextFromMax(max)
			rec.OrderIndex = &next
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog record: %w", err)
		}

		const query = `
			INSERT INTO gallery_items (id, data, created_at, updated_at)
			VALUES ($1, $2::jsonb, now(), now())
			RETURNING id, data, created_at, updated_at
		`

		raw, err := scanRawEntry(tx.QueryRow(ctx, query, uuid.New().String(), data))
		if err != nil {
			logger.Error("Create: database error", err)
			return nil, fmt.Errorf("failed to create catalog entry: %w", err)
		}

		return raw, nil
	})
}

func (r *postgresRepository) Update(ctx context.Context, id string, patch catalog.Record) (*catalog.RawEntry, error) {
	data, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog patch: %w", err)
	}

	const query = `
		UPDATE gallery_items
		SET data = data || $2::jsonb, updated_at = now()
		WHERE id = $1
		RETURNING id, data, created_at, updated_at
	`

	// Un patch que toca destacado tiene que validar el tope y escribir
	// en la misma transacción: no puede quedar el resto del patch aplicado
	// con el cambio de destacado rechazado.
	if patch.Destacado != nil {
		return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*catalog.RawEntry, error) {
			// Lock de advisory por transacción: serializa todos los cambios de
			// destacados entre admins concurrentes sin bloquear el resto de writes.
			if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('gallery_items:featured'))`); err != nil {
				return nil, fmt.Errorf("failed to acquire featured lock: %w", err)
			}

			if *patch.Destacado {
				var count int
				countQuery := `SELECT count(*) FROM gallery_items WHERE id <> $1 AND ` + featuredExpr
				if err := tx.QueryRow(ctx, countQuery, id).Scan(&count); err != nil {
					return nil, fmt.Errorf("failed to count featured entries: %w", err)
				}
				if err := catalog.CheckFeaturedCapacity(count); err != nil {
					return nil, err
				}
			}

			raw, err := scanRawEntry(tx.QueryRow(ctx, query, id, data))
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, catalog.ErrEntryNotFound
			}
			if err != nil {
				logger.Error("Update: database error", err)
				return nil, fmt.Errorf("failed to update catalog entry %s: %w", id, err)
			}

			return raw, nil
		})
	}

	raw, err := scanRawEntry(r.pool.QueryRow(ctx, query, id, data))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, catalog.ErrEntryNotFound
	}
	if err != nil {
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update catalog entry %s: %w", id, err)
	}

	return raw, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM gallery_items WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete catalog entry %s: %w", id, err)
	}

	// Borrar lo que no existe es éxito: idempotente.
	return nil
}

func (r *postgresRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	// Mismo camino que un patch con destacado: lock + chequeo de tope + merge.
	_, err := r.Update(ctx, id, catalog.Record{Destacado: &featured})
	return err
}

func (r *postgresRepository) Reorder(ctx context.Context, orders []catalog.EntryOrder) error {
	if len(orders) == 0 {
		return nil
	}

	const update = `
		UPDATE gallery_items
		SET data = jsonb_set(data, '{orderIndex}', to_jsonb($2::int)), updated_at = now()
		WHERE id = $1
	`

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, chunk := range chunkOrders(orders, reorderChunkSize) {
			batch := &pgx.Batch{}
			for _, o := range chunk {
				batch.Queue(update, o.ID, o.OrderIndex)
			}

			results := tx.SendBatch(ctx, batch)
			for _, o := range chunk {
				tag, err := results.Exec()
				if err != nil {
					results.Close()
					return fmt.Errorf("failed to reorder entry %s: %w", o.ID, err)
				}
				if tag.RowsAffected() == 0 {
					// Un id fantasma invalida el reorden completo.
					results.Close()
					return fmt.Errorf("reorder entry %s: %w", o.ID, catalog.ErrEntryNotFound)
				}
			}
			if err := results.Close(); err != nil {
				return fmt.Errorf("failed to close reorder batch: %w", err)
			}
		}

		return nil
	})
}

func (r *postgresRepository) NextOrderIndex(ctx context.Context) (int, error) {
	var max *int
	err := r.pool.QueryRow(ctx, `SELECT MAX(`+orderExpr+`) FROM gallery_items`).Scan(&max)
	if err != nil {
		logger.Error("NextOrderIndex: database error", err)
		return 0, fmt.Errorf("failed to compute next order index: %w", err)
	}
	return nextFromMax(max), nil
}

// nextFromMax: con catálogo vacío (MAX es NULL) la primera entrada arranca
// en 0, igual que los documentos legacy sin orderIndex.
func nextFromMax(max *int) int {
	if max == nil {
		return 0
	}
	return *max + 1
}

// chunkOrders parte el reorden en batches del tamaño dado.
func chunkOrders(orders []catalog.EntryOrder, size int) [][]catalog.EntryOrder {
	var chunks [][]catalog.EntryOrder
	for start := 0; start < len(orders); start += size {
		end := start + size
		if end > len(orders) {
			end = len(orders)
		}
		chunks = append(chunks, orders[start:end])
	}
	return chunks
}

func (r *postgresRepository) CountFeatured(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM gallery_items WHERE `+featuredExpr).Scan(&count)
	if err != nil {
		logger.Error("CountFeatured: database error", err)
		return 0, fmt.Errorf("failed to count featured entries: %w", err)
	}
	return count, nil
}

// scanRawEntry decodifica una fila id+jsonb+timestamps.
func scanRawEntry(row pgx.Row) (*catalog.RawEntry, error) {
	var raw catalog.RawEntry
	var data []byte

	if err := row.Scan(&raw.ID, &data, &raw.CreatedAt, &raw.UpdatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &raw.Record); err != nil {
		// Documento corrupto: se adapta como vacío en vez de romper el listado.
		logger.Error("scanRawEntry: malformed document, using empty record", err)
		raw.Record = catalog.Record{}
	}

	return &raw, nil
}

func scanRawEntries(rows pgx.Rows) ([]catalog.RawEntry, error) {
	raws := []catalog.RawEntry{}
	for rows.Next() {
		raw, err := scanRawEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		raws = append(raws, *raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog entries: %w", err)
	}
	return raws, nil
}
