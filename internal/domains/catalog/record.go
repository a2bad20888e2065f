package catalog

// Record es el documento crudo tal como vive en el document store.
// El vocabulario es heterogéneo: distintas versiones del panel admin escribieron
// claves en español y en inglés, así que cada campo lógico carga todos sus alias.
// Punteros para distinguir "clave ausente" de "valor cero": para destacado
// importa la PRESENCIA de la clave, no su truthiness.
type Record struct {
	// título: nombre > title > name (primer alias NO VACÍO)
	Nombre *string `json:"nombre,omitempty"`
	Title  *string `json:"title,omitempty"`
	Name   *string `json:"name,omitempty"`

	// descripción: descripcion > description (primer alias no vacío)
	Descripcion *string `json:"descripcion,omitempty"`
	Description *string `json:"description,omitempty"`

	// precio: precio > price (primer alias distinto de cero)
	Precio *float64 `json:"precio,omitempty"`
	Price  *float64 `json:"price,omitempty"`

	// imágenes: imagenes > images > [imageUrl] (primera lista no vacía).
	// Punteros a slice: un patch con `"imagenes": []` limpia las imágenes,
	// y eso tiene que sobrevivir la serialización (nil = clave ausente).
	Imagenes *[]string `json:"imagenes,omitempty"`
	Images   *[]string `json:"images,omitempty"`
	ImageURL *string   `json:"imageUrl,omitempty"`

	// categoría: categoria > category (por presencia, legacy español primero)
	Categoria *string `json:"categoria,omitempty"`
	Category  *string `json:"category,omitempty"`

	// destacado: destacado > featured > isFeatured (por presencia de la clave)
	Destacado  *bool `json:"destacado,omitempty"`
	Featured   *bool `json:"featured,omitempty"`
	IsFeatured *bool `json:"isFeatured,omitempty"`

	IsActive   *bool `json:"isActive,omitempty"`
	OrderIndex *int  `json:"orderIndex,omitempty"`
}

// CoalesceTitle aplica la prioridad nombre > title > name.
func (r Record) CoalesceTitle() string {
	return firstString(r.Nombre, r.Title, r.Name)
}

func (r Record) CoalesceDescription() string {
	return firstString(r.Descripcion, r.Description)
}

// CoalescePrice: gana el primer alias DISTINTO DE CERO. Un precio=0 presente
// cae al siguiente alias, igual que en los listados legacy.
func (r Record) CoalescePrice() float64 {
	for _, p := range []*float64{r.Precio, r.Price} {
		if p != nil && *p != 0 {
			return *p
		}
	}
	return 0
}

// CoalesceImages: imagenes > images > singleton con imageUrl. Nunca nil.
func (r Record) CoalesceImages() []string {
	for _, imgs := range []*[]string{r.Imagenes, r.Images} {
		if imgs != nil && len(*imgs) > 0 {
			return *imgs
		}
	}
	if r.ImageURL != nil && *r.ImageURL != "" {
		return []string{*r.ImageURL}
	}
	return []string{}
}

// CoalesceCategoryRaw: acá sí gana el primer alias PRESENTE, aunque sea "".
// Una categoría vacía presente es una decisión (se muestra como Otros),
// no un hueco que deba rellenar el alias en inglés.
func (r Record) CoalesceCategoryRaw() string {
	for _, c := range []*string{r.Categoria, r.Category} {
		if c != nil {
			return *c
		}
	}
	return ""
}

// CoalesceFeatured: gana el PRIMER alias presente, aunque su valor sea false.
// Un documento con destacado=false y featured=true NO está destacado.
func (r Record) CoalesceFeatured() bool {
	for _, f := range []*bool{r.Destacado, r.Featured, r.IsFeatured} {
		if f != nil {
			return *f
		}
	}
	return false
}

// CoalesceActive: clave ausente => activo (los documentos viejos no la tienen).
func (r Record) CoalesceActive() bool {
	if r.IsActive != nil {
		return *r.IsActive
	}
	return true
}

func (r Record) CoalesceOrderIndex() int {
	if r.OrderIndex != nil {
		return *r.OrderIndex
	}
	return 0
}

// firstString: gana el primer alias NO VACÍO. Un nombre="" presente cae al
// siguiente alias con valor; los strings vacíos solo ganan cuando no hay nada.
func firstString(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return ""
}
