package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores válidos para Employee.Gender (opcional: cadena vacía = no informado).
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// MinSalary salario mínimo admitido para un empleado.
var MinSalary = decimal.NewFromInt(1000)

// Employee representa un registro del directorio de empleados.
// Email es único entre empleados; Salary nunca baja de MinSalary.
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Gender        string // "", Male, Female, Other
	Designation   string
	Salary        decimal.Decimal
	DateOfJoining time.Time // solo fecha, sin componente horaria
	Department    string
	EmployeePhoto string // URL opcional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidGender indica si g es un valor admitido (vacío cuenta como no informado).
func ValidGender(g string) bool {
	return g == "" || g == GenderMale || g == GenderFemale || g == GenderOther
}
