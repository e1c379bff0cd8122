package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/usecase"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"
)

// stubPDFGenerator captura los empleados recibidos y devuelve bytes fijos.
type stubPDFGenerator struct {
	received []*entity.Employee
	err      error
}

func (g *stubPDFGenerator) GenerateDirectoryPDF(employees []*entity.Employee) ([]byte, error) {
	g.received = employees
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-stub"), nil
}

func TestReport_GeneraConTodosLosEmpleados(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	employeeUC := usecase.NewEmployeeUseCase(repo)
	addFixture(t, employeeUC, "a@example.com")
	addFixture(t, employeeUC, "b@example.com")

	gen := &stubPDFGenerator{}
	reportUC := usecase.NewReportUseCase(repo, gen)

	out, err := reportUC.DirectoryPDF()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), out)
	assert.Len(t, gen.received, 2)
}

func TestReport_PropagaErrorDelGenerador(t *testing.T) {
	gen := &stubPDFGenerator{err: errors.New("sin fuentes")}
	reportUC := usecase.NewReportUseCase(&fakeEmployeeRepo{}, gen)

	_, err := reportUC.DirectoryPDF()
	assert.Error(t, err)
}
