package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"
)

// AddEmployeeRequest entrada para crear un empleado.
// DateOfJoining llega en forma string y se parsea en el use case.
type AddEmployeeRequest struct {
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Gender        string          `json:"gender"`
	Designation   string          `json:"designation"`
	Salary        decimal.Decimal `json:"salary"`
	DateOfJoining string          `json:"date_of_joining"`
	Department    string          `json:"department"`
	EmployeePhoto string          `json:"employee_photo"`
}

// UpdateEmployeeRequest entrada para actualización parcial: un slot opcional
// por campo actualizable. Solo los punteros no-nil sobrescriben el registro;
// ningún campo fuera de esta lista puede tocarse.
type UpdateEmployeeRequest struct {
	FirstName     *string          `json:"first_name"`
	LastName      *string          `json:"last_name"`
	Email         *string          `json:"email"`
	Gender        *string          `json:"gender"`
	Designation   *string          `json:"designation"`
	Salary        *decimal.Decimal `json:"salary"`
	DateOfJoining *string          `json:"date_of_joining"`
	Department    *string          `json:"department"`
	EmployeePhoto *string          `json:"employee_photo"`
}

// EmployeeResponse salida de un empleado con fechas en ISO-8601.
type EmployeeResponse struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Gender        string  `json:"gender"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Department    string  `json:"department"`
	EmployeePhoto string  `json:"employee_photo"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// EmployeeResult envelope de respuesta para las mutaciones de empleados.
type EmployeeResult struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Employee *EmployeeResponse `json:"employee"`
}

// ToEmployeeResponse proyecta la entidad a su forma de frontera.
func ToEmployeeResponse(e *entity.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Gender:        e.Gender,
		Designation:   e.Designation,
		Salary:        e.Salary.InexactFloat64(),
		DateOfJoining: e.DateOfJoining.Format(DateLayout),
		Department:    e.Department,
		EmployeePhoto: e.EmployeePhoto,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}

// ToEmployeeResponses proyecta una lista completa.
func ToEmployeeResponses(list []*entity.Employee) []*EmployeeResponse {
	out := make([]*EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToEmployeeResponse(e))
	}
	return out
}
