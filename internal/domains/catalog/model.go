package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry es la forma canónica de una pieza del catálogo, ya normalizada:
// título/descripción/precio coalescidos, categoría canonical, imágenes resueltas
// a URLs navegables. Es lo único que ve el resto del sistema.
type Entry struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    Category        `json:"category"`
	IsFeatured  bool            `json:"isFeatured"`
	IsActive    bool            `json:"isActive"`
	OrderIndex  int             `json:"orderIndex"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MainImage devuelve la primera imagen o "" si no hay.
func (e Entry) MainImage() string {
	if len(e.Images) > 0 {
		return e.Images[0]
	}
	return ""
}

// CategoryDisplay es el label público de la categoría.
func (e Entry) CategoryDisplay() string {
	return CategoryLabel(string(e.Category))
}

// Filters acota un listado. Punteros nil = sin filtro.
type Filters struct {
	Category   *Category
	IsActive   *bool
	IsFeatured *bool
}

// SortField define el orden del listado.
type SortField string

const (
	SortByOrderIndex SortField = "orderIndex"
	SortByCreatedAt  SortField = "createdAt"
)

type Sort struct {
	Field      SortField
	Descending bool
}

// Source indica de dónde salió el catálogo servido.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Catalog es el resultado del selector híbrido.
type Catalog struct {
	Entries []Entry `json:"entries"`
	Source  Source  `json:"source"`
}
