package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/dto"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD del directorio de empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// GetAll devuelve todos los empleados. Los errores de persistencia se
// propagan al caller sin envelope.
func (uc *EmployeeUseCase) GetAll() ([]*dto.EmployeeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponses(list), nil
}

// GetByEid busca por id. (nil, nil) cuando no existe: ausencia no es error
// en esta operación. Un id malformado sí propaga el error de la búsqueda.
func (uc *EmployeeUseCase) GetByEid(eid string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(eid)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return dto.ToEmployeeResponse(e), nil
}

// SearchByDesignationOrDepartment filtra por igualdad. Exige al menos uno de
// los dos filtros; sin ninguno retorna error (se propaga, no envelope).
func (uc *EmployeeUseCase) SearchByDesignationOrDepartment(designation, department string) ([]*dto.EmployeeResponse, error) {
	if designation == "" && department == "" {
		return nil, domain.ErrMissingSearchFilter
	}
	list, err := uc.repo.Search(designation, department)
	if err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponses(list), nil
}

// Add crea un empleado: valida campos obligatorios, enum de género y el piso
// de salario (además del constraint del store, para fallar antes y con mejor
// mensaje), parsea date_of_joining y persiste con timestamps actuales.
func (uc *EmployeeUseCase) Add(in dto.AddEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Designation == "" || in.Department == "" {
		return nil, domain.ErrEmployeeFieldsEmpty
	}
	if !entity.ValidGender(in.Gender) {
		return nil, domain.ErrInvalidGender
	}
	if in.Salary.LessThan(entity.MinSalary) {
		return nil, domain.ErrSalaryBelowMinimum
	}
	joined, err := dto.ParseJoiningDate(in.DateOfJoining)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmployeeEmailExists
	}
	now := time.Now()
	e := &entity.Employee{
		ID:            uuid.New().String(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Gender:        in.Gender,
		Designation:   in.Designation,
		Salary:        in.Salary,
		DateOfJoining: joined,
		Department:    in.Department,
		EmployeePhoto: in.EmployeePhoto,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(e), nil
}

// UpdateByEid actualización parcial: solo los campos presentes en el input
// sobrescriben el registro. Salary y Gender se revalidan cuando vienen
// informados; date_of_joining se re-parsea de su forma string. updated_at
// se refresca siempre que la actualización prospera.
func (uc *EmployeeUseCase) UpdateByEid(eid string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(eid)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if in.FirstName != nil {
		e.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		e.LastName = *in.LastName
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Gender != nil {
		if !entity.ValidGender(*in.Gender) {
			return nil, domain.ErrInvalidGender
		}
		e.Gender = *in.Gender
	}
	if in.Designation != nil {
		e.Designation = *in.Designation
	}
	if in.Salary != nil {
		if in.Salary.LessThan(entity.MinSalary) {
			return nil, domain.ErrSalaryBelowMinimum
		}
		e.Salary = *in.Salary
	}
	if in.DateOfJoining != nil {
		joined, err := dto.ParseJoiningDate(*in.DateOfJoining)
		if err != nil {
			return nil, err
		}
		e.DateOfJoining = joined
	}
	if in.Department != nil {
		e.Department = *in.Department
	}
	if in.EmployeePhoto != nil {
		e.EmployeePhoto = *in.EmployeePhoto
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(e), nil
}

// DeleteByEid borrado duro por id. Reporta ErrEmployeeNotFound si no había
// registro que borrar (un segundo delete del mismo id falla).
func (uc *EmployeeUseCase) DeleteByEid(eid string) error {
	existed, err := uc.repo.Delete(eid)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
