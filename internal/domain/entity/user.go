package entity

import "time"

// User representa una cuenta administrativa que puede autenticarse contra la API.
// Username y Email son únicos a nivel global (constraints en el store).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca texto plano después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
