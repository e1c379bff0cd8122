package usecase

import (
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/repository"
)

// DirectoryPDFGenerator puerto hacia la infraestructura de PDF.
type DirectoryPDFGenerator interface {
	GenerateDirectoryPDF(employees []*entity.Employee) ([]byte, error)
}

// ReportUseCase genera el reporte PDF del directorio completo de empleados.
type ReportUseCase struct {
	repo repository.EmployeeRepository
	pdf  DirectoryPDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(repo repository.EmployeeRepository, pdf DirectoryPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// DirectoryPDF lista todos los empleados y los vuelca al generador.
func (uc *ReportUseCase) DirectoryPDF() ([]byte, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateDirectoryPDF(list)
}
