package catalog

import (
	"errors"
	"fmt"
)

// MaxFeatured es el tope de entradas destacadas del home.
const MaxFeatured = 4

// Errores del dominio. Los handlers los mapean a HTTP con errors.Is.
var (
	ErrEntryNotFound      = errors.New("catalog entry not found")
	ErrInvalidEntry       = errors.New("invalid catalog entry")
	ErrBackendUnavailable = errors.New("catalog backend unavailable")
)

// FeaturedLimitError se devuelve al intentar destacar la entrada N+1.
// Lleva el conteo actual para que el mensaje del panel sea útil.
type FeaturedLimitError struct {
	Count int
}

func (e *FeaturedLimitError) Error() string {
	return fmt.Sprintf("ya hay %d elementos destacados, el máximo es %d", e.Count, MaxFeatured)
}

// CheckFeaturedCapacity decide si, con count entradas ya destacadas,
// hay lugar para una más. Tanto el repositorio como el servicio pasan
// por acá: la regla vive en un solo lado.
func CheckFeaturedCapacity(count int) error {
	if count >= MaxFeatured {
		return &FeaturedLimitError{Count: count}
	}
	return nil
}

// IsFeaturedLimit reporta si err es un error de límite de destacados.
func IsFeaturedLimit(err error) bool {
	var fle *FeaturedLimitError
	return errors.As(err, &fle)
}
