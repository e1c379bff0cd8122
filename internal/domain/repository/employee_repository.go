package repository

import "github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// GetByID y GetByEmail devuelven (nil, nil) cuando no hay coincidencia.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	List() ([]*entity.Employee, error)
	// Search filtra por igualdad: designation y/o department (AND si vienen ambos).
	// Los argumentos vacíos no participan en el filtro.
	Search(designation, department string) ([]*entity.Employee, error)
	Update(e *entity.Employee) error
	// Delete elimina por id y reporta si existía un registro que borrar.
	Delete(id string) (bool, error)
}
