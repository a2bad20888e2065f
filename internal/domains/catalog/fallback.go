package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// FallbackProduct es la forma del dataset estático embebido en el binario.
// Es la forma "Product" del storefront viejo, no la canónica: el dataset se
// conserva tal cual para que el sitio siga mostrando la vitrina de siempre
// cuando el backend está vacío o caído.
type FallbackProduct struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Images      []string
	Category    string // vocabulario de persistencia (español)
	Featured    bool
	InStock     bool
	OrderIndex  int
	Rating      float64
	Reviews     int
	Tags        []string
	CreatedAt   time.Time
}

// fallbackProducts: la vitrina estática original, 8 piezas.
var fallbackProducts = []FallbackProduct{
	{
		ID:          "1",
		Name:        "Hombre Araña - Diseño Personalizado",
		Description: "Diseño de Hombre Araña en neón LED con efectos vibrantes. Perfecto para fans y espacios temáticos.",
		Images:      []string{"/images/hombre araña.jpeg"},
		Category:    "personalizado",
		Featured:    true,
		InStock:     true,
		OrderIndex:  1,
		Rating:      4.8,
		Reviews:     64,
		Tags:        []string{"personalizado", "neón"},
		CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:          "2",
		Name:        "Pizza - Letrero Comercial",
		Description: "Letrero comercial para pizzería con diseño llamativo y colores vibrantes. Ideal para restaurantes.",
		Images:      []string{"/images/pizza.jpeg"},
		Category:    "negocios",
		Featured:    true,
		InStock:     true,
		OrderIndex:  2,
		Rating:      4.8,
		Reviews:     48,
		Tags:        []string{"negocios", "neón"},
		CreatedAt:   time.Date(2024, 1, 16, 11, 0, 0, 0, time.UTC),
	},
	{
		ID:          "3",
		Name:        "Cerrajería - Letrero Comercial",
		Description: "Letrero profesional para cerrajería con diseño elegante y gran visibilidad nocturna.",
		Images:      []string{"/images/cerrajeria.jpeg"},
		Category:    "negocios",
		Featured:    false,
		InStock:     true,
		OrderIndex:  3,
		Rating:      4.8,
		Reviews:     31,
		Tags:        []string{"negocios", "neón"},
		CreatedAt:   time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC),
	},
	{
		ID:          "4",
		Name:        "Tecno Alfa - Logo Empresarial",
		Description: "Logo corporativo moderno con efectos de neón profesionales. Diseño bicolor impactante.",
		Images:      []string{"/images/tecno alfa.jpeg"},
		Category:    "negocios",
		Featured:    true,
		InStock:     true,
		OrderIndex:  4,
		Rating:      4.8,
		Reviews:     57,
		Tags:        []string{"negocios", "neón"},
		CreatedAt:   time.Date(2024, 1, 18, 13, 0, 0, 0, time.UTC),
	},
	{
		ID:          "5",
		Name:        "Happy Birthday - Celebración",
		Description: "Letrero personalizado para celebraciones especiales con diseño elegante y festivo.",
		Images:      []string{"/images/happy birthday.jpeg"},
		Category:    "eventos",
		Featured:    false,
		InStock:     true,
		OrderIndex:  5,
		Rating:      4.8,
		Reviews:     22,
		Tags:        []string{"eventos", "neón"},
		CreatedAt:   time.Date(2024, 1, 19, 14, 0, 0, 0, time.UTC),
	},
	{
		ID:          "6",
		Name:        "Nombre Personalizado",
		Description: "Letrero personalizado con nombre en estilo elegante y moderno, perfecto para decoración.",
		Images:      []string{"/images/nombre personalizado.jpeg"},
		Category:    "hogar",
		Featured:    true,
		InStock:     true,
		OrderIndex:  6,
		Rating:      4.8,
		Reviews:     73,
		Tags:        []string{"hogar", "neón"},
		CreatedAt:   time.Date(2024, 1, 20, 15, 0, 0, 0, time.UTC),
	},
	{
		ID:          "7",
		Name:        "Lavadero El Veci - Comercial",
		Description: "Letrero comercial para lavadero con diseño profesional y múltiples colores.",
		Images:      []string{"/images/lavadero el veci.jpeg"},
		Category:    "negocios",
		Featured:    false,
		InStock:     true,
		OrderIndex:  7,
		Rating:      4.8,
		Reviews:     19,
		Tags:        []string{"negocios", "neón"},
		CreatedAt:   time.Date(2024, 1, 21, 16, 0, 0, 0, time.UTC),
	},
	{
		ID:          "8",
		Name:        "Pizza - Variante 2",
		Description: "Segunda versión del letrero para pizzería con diseño alternativo y efectos únicos.",
		Images:      []string{"/images/pizza2.jpeg"},
		Category:    "negocios",
		Featured:    false,
		InStock:     true,
		OrderIndex:  8,
		Rating:      4.8,
		Reviews:     42,
		Tags:        []string{"negocios", "neón"},
		CreatedAt:   time.Date(2024, 1, 22, 17, 0, 0, 0, time.UTC),
	},
}

// FallbackProducts devuelve una copia del dataset estático.
func FallbackProducts() []FallbackProduct {
	out := make([]FallbackProduct, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}

// FallbackToEntry mapea una pieza del dataset estático a la forma canónica.
// Solo es lossy en los campos que la forma canónica no tiene (rating, tags...).
func FallbackToEntry(p FallbackProduct) Entry {
	images := make([]string, len(p.Images))
	copy(images, p.Images)

	return Entry{
		ID:          p.ID,
		Title:       p.Name,
		Description: p.Description,
		Price:       decimal.NewFromFloat(p.Price),
		Images:      images,
		Category:    MapToCategory(p.Category),
		IsFeatured:  p.Featured,
		IsActive:    p.InStock,
		OrderIndex:  p.OrderIndex,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.CreatedAt,
	}
}

// EntryToFallback es el espejo: canónica → forma del dataset.
// Lossy solo en lo que FallbackProduct no modela.
func EntryToFallback(e Entry) FallbackProduct {
	price, _ := e.Price.Float64()
	images := make([]string, len(e.Images))
	copy(images, e.Images)

	return FallbackProduct{
		ID:          e.ID,
		Name:        e.Title,
		Description: e.Description,
		Price:       price,
		Images:      images,
		Category:    CategoryStorageValue(string(e.Category)),
		Featured:    e.IsFeatured,
		InStock:     e.IsActive,
		OrderIndex:  e.OrderIndex,
		Rating:      4.8,
		Reviews:     20,
		Tags:        []string{"personalizado", string(e.Category)},
		CreatedAt:   e.CreatedAt,
	}
}

// FallbackEntries devuelve el dataset completo ya en forma canónica,
// ordenado por orderIndex como viene.
func FallbackEntries() []Entry {
	entries := make([]Entry, 0, len(fallbackProducts))
	for _, p := range fallbackProducts {
		entries = append(entries, FallbackToEntry(p))
	}
	return entries
}
