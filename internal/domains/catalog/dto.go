package catalog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ===== Requests del panel admin =====

type CreateEntryRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	IsFeatured  bool     `json:"isFeatured"`
	IsActive    *bool    `json:"isActive"`
	OrderIndex  *int     `json:"orderIndex"`
}

func (r CreateEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Price, validation.Min(0.0)),
	)
}

// UpdateEntryRequest es un patch parcial: solo los campos presentes se tocan.
type UpdateEntryRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Images      []string `json:"images"`
	Category    *string  `json:"category"`
	IsFeatured  *bool    `json:"isFeatured"`
	IsActive    *bool    `json:"isActive"`
	OrderIndex  *int     `json:"orderIndex"`
}

func (r UpdateEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.When(r.Title != nil, validation.Length(1, 200))),
		validation.Field(&r.Price, validation.When(r.Price != nil, validation.Min(0.0))),
	)
}

// IsEmpty reporta si el patch no trae ningún campo.
func (r UpdateEntryRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Price == nil &&
		r.Images == nil && r.Category == nil && r.IsFeatured == nil &&
		r.IsActive == nil && r.OrderIndex == nil
}

type SetFeaturedRequest struct {
	IsFeatured bool `json:"isFeatured"`
}

type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// ReorderRequest: nuevo orden completo, id → orderIndex.
type ReorderRequest struct {
	Orders []EntryOrder `json:"orders"`
}

type EntryOrder struct {
	ID         string `json:"id"`
	OrderIndex int    `json:"orderIndex"`
}

func (r ReorderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Orders, validation.Required),
	)
}

// ===== Proyección legacy "Product" =====

// ProductView es la forma que consumía el storefront viejo. Proyección pura
// sobre Entry: no se persiste nunca en esta forma.
type ProductView struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Price        float64        `json:"price"`
	Images       []string       `json:"images"`
	Category     Category       `json:"category"`
	Colors       []ProductColor `json:"colors"`
	Sizes        []ProductSize  `json:"sizes"`
	Customizable bool           `json:"customizable"`
	Featured     bool           `json:"featured"`
	InStock      bool           `json:"inStock"`
	Rating       float64        `json:"rating"`
	Reviews      int            `json:"reviews"`
	Tags         []string       `json:"tags"`
}

type ProductColor struct {
	Name      string `json:"name"`
	Hex       string `json:"hex"`
	GlowColor string `json:"glowColor"`
}

type ProductSize struct {
	Name       string  `json:"name"`
	Dimensions string  `json:"dimensions"`
	Price      float64 `json:"price"`
}

// ToProductView proyecta una Entry a la forma legacy.
// Colors/sizes/rating son los placeholders de siempre del storefront.
func ToProductView(e Entry) ProductView {
	price, _ := e.Price.Float64()
	return ProductView{
		ID:          e.ID,
		Name:        e.Title,
		Description: e.Description,
		Price:       price,
		Images:      e.Images,
		Category:    e.Category,
		Colors: []ProductColor{
			{Name: "Personalizable", Hex: "#ffffff", GlowColor: "#ffffff"},
		},
		Sizes: []ProductSize{
			{Name: "Personalizable", Dimensions: "A medida", Price: 0},
		},
		Customizable: true,
		Featured:     e.IsFeatured,
		InStock:      e.IsActive,
		Rating:       4.8,
		Reviews:      20,
		Tags:         []string{"personalizado", string(e.Category)},
	}
}
