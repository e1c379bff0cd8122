package dto

import (
	"time"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain"
)

// DateLayout formato ISO-8601 de fecha pura con el que date_of_joining cruza la frontera.
const DateLayout = "2006-01-02"

// ParseJoiningDate interpreta la forma string de date_of_joining.
// Acepta fecha pura (YYYY-MM-DD) o timestamp RFC 3339 completo.
func ParseJoiningDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidDate
}

// DeleteResult envelope de respuesta para el borrado de empleados.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
