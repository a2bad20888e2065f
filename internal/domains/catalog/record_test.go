package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func imgs(vals ...string) *[]string {
	v := append([]string{}, vals...)
	return &v
}

func TestRecord_CoalesceTitle(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"nombre wins", Record{Nombre: strPtr("Letrero"), Title: strPtr("Sign"), Name: strPtr("sign")}, "Letrero"},
		{"title over name", Record{Title: strPtr("Sign"), Name: strPtr("old")}, "Sign"},
		{"name alone", Record{Name: strPtr("old")}, "old"},
		// no vacío gana: un nombre="" presente cae al siguiente alias
		{"empty nombre falls through", Record{Nombre: strPtr(""), Title: strPtr("Sign")}, "Sign"},
		{"all empty", Record{Nombre: strPtr(""), Title: strPtr("")}, ""},
		{"all absent", Record{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.CoalesceTitle())
		})
	}
}

func TestRecord_CoalesceDescription(t *testing.T) {
	assert.Equal(t, "neón", Record{Descripcion: strPtr("neón"), Description: strPtr("neon")}.CoalesceDescription())
	assert.Equal(t, "neon", Record{Descripcion: strPtr(""), Description: strPtr("neon")}.CoalesceDescription())
	assert.Equal(t, "", Record{}.CoalesceDescription())
}

func TestRecord_CoalesceFeatured(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{"destacado true", Record{Destacado: boolPtr(true)}, true},
		// el primer alias PRESENTE gana aunque valga false
		{"destacado false beats featured true", Record{Destacado: boolPtr(false), Featured: boolPtr(true)}, false},
		{"featured false beats isFeatured true", Record{Featured: boolPtr(false), IsFeatured: boolPtr(true)}, false},
		{"isFeatured alone", Record{IsFeatured: boolPtr(true)}, true},
		{"all absent", Record{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.CoalesceFeatured())
		})
	}
}

func TestRecord_CoalesceCategoryRaw(t *testing.T) {
	assert.Equal(t, "negocios", Record{Categoria: strPtr("negocios"), Category: strPtr("home")}.CoalesceCategoryRaw())
	// la categoría coalescea por presencia: "" presente no cae al alias inglés
	assert.Equal(t, "", Record{Categoria: strPtr(""), Category: strPtr("home")}.CoalesceCategoryRaw())
	assert.Equal(t, "home", Record{Category: strPtr("home")}.CoalesceCategoryRaw())
	assert.Equal(t, "", Record{}.CoalesceCategoryRaw())
}

func TestRecord_CoalesceImages(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want []string
	}{
		{"imagenes wins", Record{Imagenes: imgs("a.jpg"), Images: imgs("b.jpg")}, []string{"a.jpg"}},
		{"images fallback", Record{Images: imgs("b.jpg")}, []string{"b.jpg"}},
		{"imageUrl singleton", Record{ImageURL: strPtr("c.jpg")}, []string{"c.jpg"}},
		{"empty imagenes falls through", Record{Imagenes: imgs(), Images: imgs("b.jpg")}, []string{"b.jpg"}},
		{"empty imageUrl ignored", Record{ImageURL: strPtr("")}, []string{}},
		{"nothing present", Record{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rec.CoalesceImages()
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_CoalesceActiveAndOrder(t *testing.T) {
	// documentos viejos sin isActive son activos
	assert.True(t, Record{}.CoalesceActive())
	assert.False(t, Record{IsActive: boolPtr(false)}.CoalesceActive())
	assert.True(t, Record{IsActive: boolPtr(true)}.CoalesceActive())

	assert.Equal(t, 0, Record{}.CoalesceOrderIndex())
	assert.Equal(t, 7, Record{OrderIndex: intPtr(7)}.CoalesceOrderIndex())
}

func TestRecord_CoalescePrice(t *testing.T) {
	assert.Equal(t, 45000.0, Record{Precio: floatPtr(45000), Price: floatPtr(99)}.CoalescePrice())
	assert.Equal(t, 99.0, Record{Price: floatPtr(99)}.CoalescePrice())
	assert.Equal(t, 0.0, Record{}.CoalescePrice())
	// precio=0 presente cae al siguiente alias con valor
	assert.Equal(t, 99.0, Record{Precio: floatPtr(0), Price: floatPtr(99)}.CoalescePrice())
	assert.Equal(t, 0.0, Record{Precio: floatPtr(0), Price: floatPtr(0)}.CoalescePrice())
}

func TestRecord_JSONRoundTrip(t *testing.T) {
	raw := `{"nombre":"Pizza","precio":30000,"destacado":false,"featured":true,"imagenes":["gallery/pizza.jpg"],"categoria":"negocios"}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "Pizza", rec.CoalesceTitle())
	assert.Equal(t, 30000.0, rec.CoalescePrice())
	assert.False(t, rec.CoalesceFeatured())
	assert.Equal(t, []string{"gallery/pizza.jpg"}, rec.CoalesceImages())
	assert.Equal(t, "negocios", rec.CoalesceCategoryRaw())
	assert.True(t, rec.CoalesceActive())

	// las claves ausentes no reaparecen al serializar
	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "isFeatured")
	assert.NotContains(t, string(out), "isActive")
}

func TestRecord_EmptyImagesPatchSurvivesMarshal(t *testing.T) {
	// un patch que limpia las imágenes tiene que llevar el array vacío,
	// no desaparecer del JSON
	out, err := json.Marshal(Record{Imagenes: imgs()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"imagenes":[]}`, string(out))

	// sin tocar imágenes, la clave no viaja en el patch
	out, err = json.Marshal(Record{Nombre: strPtr("x")})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "imagenes")
}
