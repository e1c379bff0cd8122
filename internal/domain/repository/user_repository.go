package repository

import "github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsernameOrEmail busca un usuario cuyo username O email sea igual a q.
	GetByUsernameOrEmail(q string) (*entity.User, error)
	// ExistsByUsernameOrEmail chequeo combinado de existencia para signup.
	ExistsByUsernameOrEmail(username, email string) (bool, error)
}
