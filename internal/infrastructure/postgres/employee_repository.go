package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

const employeeColumns = `id, first_name, last_name, email, gender, designation,
	salary, date_of_joining, department, employee_photo, created_at, updated_at`

// Create persiste un nuevo empleado. Email único y salario mínimo los
// garantizan los constraints de la tabla como última línea de defensa.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.FirstName, e.LastName, e.Email, nullable(e.Gender), e.Designation,
		e.Salary, e.DateOfJoining, e.Department, nullable(e.EmployeePhoto),
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeEmailExists
		}
		if isCheckViolation(err) {
			return domain.ErrSalaryBelowMinimum
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return e, nil
}

// GetByEmail obtiene un empleado por email. (nil, nil) si no existe.
func (r *EmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	row := r.pool.QueryRow(context.Background(), query, email)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by email: %w", err)
	}
	return e, nil
}

// List devuelve todos los empleados ordenados por fecha de creación.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at`
	return r.queryMany(query)
}

// Search filtra por igualdad sobre designation y/o department (AND si vienen ambos).
func (r *EmployeeRepo) Search(designation, department string) ([]*entity.Employee, error) {
	switch {
	case designation != "" && department != "":
		query := `SELECT ` + employeeColumns + ` FROM employees
			WHERE designation = $1 AND department = $2 ORDER BY created_at`
		return r.queryMany(query, designation, department)
	case designation != "":
		query := `SELECT ` + employeeColumns + ` FROM employees
			WHERE designation = $1 ORDER BY created_at`
		return r.queryMany(query, designation)
	case department != "":
		query := `SELECT ` + employeeColumns + ` FROM employees
			WHERE department = $1 ORDER BY created_at`
		return r.queryMany(query, department)
	default:
		return nil, domain.ErrMissingSearchFilter
	}
}

// Update sobreescribe el registro completo (el merge campo a campo ya lo hizo el use case).
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees SET first_name = $2, last_name = $3, email = $4, gender = $5,
			designation = $6, salary = $7, date_of_joining = $8, department = $9,
			employee_photo = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		e.ID, e.FirstName, e.LastName, e.Email, nullable(e.Gender), e.Designation,
		e.Salary, e.DateOfJoining, e.Department, nullable(e.EmployeePhoto), e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeEmailExists
		}
		if isCheckViolation(err) {
			return domain.ErrSalaryBelowMinimum
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// Delete elimina por id y reporta si existía el registro (borrado duro, sin tombstone).
func (r *EmployeeRepo) Delete(id string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EmployeeRepo) queryMany(query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var gender, photo sql.NullString
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &gender, &e.Designation,
		&e.Salary, &e.DateOfJoining, &e.Department, &photo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Gender = gender.String
	e.EmployeePhoto = photo.String
	return &e, nil
}

// nullable convierte cadena vacía en NULL para columnas opcionales.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
