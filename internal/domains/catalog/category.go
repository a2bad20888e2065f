package catalog

import "strings"

// Category là canonical category del catálogo.
type Category string

const (
	CategoryBusiness   Category = "business"
	CategoryHome       Category = "home"
	CategoryCustom     Category = "custom"
	CategoryDecorative Category = "decorative"
	CategorySigns      Category = "signs"
	CategoryLetters    Category = "letters"
)

// categoryLabels: labels públicos en español.
var categoryLabels = map[Category]string{
	CategoryBusiness:   "Negocios",
	CategoryHome:       "Hogar",
	CategoryCustom:     "Personalizado",
	CategoryDecorative: "Decorativo",
	CategorySigns:      "Señales",
	CategoryLetters:    "Letras",
}

// categoryAliases mapea los valores legacy guardados en el document store
// (casi todos en español, escritos por distintas versiones del formulario admin)
// al canonical. Los valores en inglés se mapean a sí mismos.
var categoryAliases = map[string]Category{
	"business":       CategoryBusiness,
	"negocios":       CategoryBusiness,
	"home":           CategoryHome,
	"hogar":          CategoryHome,
	"custom":         CategoryCustom,
	"personalizado":  CategoryCustom,
	"personalizadas": CategoryCustom,
	"decorative":     CategoryDecorative,
	"decorativo":     CategoryDecorative,
	"decorativos":    CategoryDecorative,
	"signs":          CategorySigns,
	"señales":        CategorySigns,
	"señal":          CategorySigns,
	"letters":        CategoryLetters,
	"letras":         CategoryLetters,
	"event":          CategoryCustom,
	"events":         CategoryCustom,
	"eventos":        CategoryCustom,
}

// NormalizeCategory convierte cualquier alias (inglés o español) al canonical.
// ok=false cuando el input está vacío o no es un alias conocido.
func NormalizeCategory(raw string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}
	cat, ok := categoryAliases[key]
	return cat, ok
}

// MapToCategory es la variante con default: alias desconocido => custom.
// Es lo que usa la capa de adaptación, que nunca puede fallar.
func MapToCategory(raw string) Category {
	if cat, ok := NormalizeCategory(raw); ok {
		return cat
	}
	return CategoryCustom
}

// CategoryLabel resuelve el label público. Acepta canonical o legacy.
// Desconocido => capitalizar el raw; vacío => "Otros".
func CategoryLabel(raw string) string {
	if cat, ok := NormalizeCategory(raw); ok {
		return categoryLabels[cat]
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		return strings.ToUpper(trimmed[:1]) + trimmed[1:]
	}

	return "Otros"
}

// CategoryStorageValue convierte el canonical al vocabulario de persistencia
// (español). Cada categoría conserva su propio valor: normalizar lo que se
// guardó tiene que devolver la misma categoría. Default personalizado.
func CategoryStorageValue(raw string) string {
	cat, _ := NormalizeCategory(raw)
	switch cat {
	case CategoryBusiness:
		return "negocios"
	case CategoryHome:
		return "hogar"
	case CategoryDecorative:
		return "decorativo"
	case CategorySigns:
		return "señales"
	case CategoryLetters:
		return "letras"
	default:
		return "personalizado"
	}
}

// CategoryAliases devuelve todos los alias (canonical incluido) de una
// categoría. El repositorio los usa para filtrar documentos legacy por igual.
func CategoryAliases(cat Category) []string {
	var aliases []string
	for alias, canonical := range categoryAliases {
		if canonical == cat {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

// Categories devuelve el set canonical en orden estable (para stats).
func Categories() []Category {
	return []Category{
		CategoryBusiness,
		CategoryHome,
		CategoryCustom,
		CategoryDecorative,
		CategorySigns,
		CategoryLetters,
	}
}
