// Package pdf implementa la generación del reporte PDF del directorio de
// empleados: una tabla con nombre, contacto, cargo, departamento, salario
// y fecha de ingreso, pensada para impresión desde la herramienta de RRHH.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/usecase"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.DirectoryPDFGenerator = (*MarotoDirectoryGenerator)(nil)

// MarotoDirectoryGenerator implementa usecase.DirectoryPDFGenerator usando Maroto v2.
type MarotoDirectoryGenerator struct{}

// NewMarotoDirectoryGenerator construye el generador.
func NewMarotoDirectoryGenerator() *MarotoDirectoryGenerator { return &MarotoDirectoryGenerator{} }

// GenerateDirectoryPDF genera el PDF del directorio y devuelve sus bytes.
func (g *MarotoDirectoryGenerator) GenerateDirectoryPDF(employees []*entity.Employee) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Employee Directory", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(employees)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range employees {
		m.AddRows(employeeRow(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del directorio: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(total int) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Employee Directory", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d employees — %s", total, time.Now().Format("2006-01-02")), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 3,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(6).Add(
		col.New(3).Add(text.New("Name", header)),
		col.New(3).Add(text.New("Email", header)),
		col.New(2).Add(text.New("Designation", header)),
		col.New(2).Add(text.New("Department", header)),
		col.New(1).Add(text.New("Salary", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right})),
		col.New(1).Add(text.New("Joined", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right})),
	)
}

func employeeRow(e *entity.Employee) core.Row {
	cell := props.Text{Size: 8}
	return row.New(5).Add(
		col.New(3).Add(text.New(e.FirstName+" "+e.LastName, cell)),
		col.New(3).Add(text.New(e.Email, cell)),
		col.New(2).Add(text.New(e.Designation, cell)),
		col.New(2).Add(text.New(e.Department, cell)),
		col.New(1).Add(text.New(e.Salary.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		col.New(1).Add(text.New(e.DateOfJoining.Format("2006-01-02"), props.Text{Size: 8, Align: align.Right})),
	)
}
