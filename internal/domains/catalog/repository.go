package catalog

import "context"

// Repository es el contrato del document store del catálogo.
// Devuelve documentos crudos (RawEntry); la normalización es del Adapter.
type Repository interface {
	// List aplica filtros y orden en el store.
	List(ctx context.Context, filters Filters, sort Sort) ([]RawEntry, error)

	// ListAll devuelve todo ordenado por orderIndex. Vacío es éxito, no error.
	ListAll(ctx context.Context) ([]RawEntry, error)

	// GetByID devuelve (nil, nil) cuando el documento no existe.
	GetByID(ctx context.Context, id string) (*RawEntry, error)

	// Create asigna id y timestamps del servidor. Si el record no trae
	// orderIndex, se asigna max+1 dentro de la misma transacción.
	Create(ctx context.Context, rec Record) (*RawEntry, error)

	// Update mergea el patch sobre el documento y refresca updated_at.
	// ErrEntryNotFound si el id no existe.
	Update(ctx context.Context, id string, patch Record) (*RawEntry, error)

	// Delete es idempotente: borrar lo inexistente es éxito.
	Delete(ctx context.Context, id string) error

	// SetFeatured aplica el límite de destacados de forma transaccional.
	// El conteo excluye al propio id: re-destacar algo ya destacado es no-op.
	SetFeatured(ctx context.Context, id string, featured bool) error

	// Reorder aplica el orden completo en una sola transacción, todo o nada.
	Reorder(ctx context.Context, orders []EntryOrder) error

	// NextOrderIndex = max(orderIndex) + 1.
	NextOrderIndex(ctx context.Context) (int, error)

	CountFeatured(ctx context.Context) (int, error)
}
