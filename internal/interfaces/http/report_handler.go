package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/usecase"
)

// ReportHandler sirve el reporte PDF del directorio de empleados.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DirectoryPDF genera y descarga el directorio completo como PDF.
func (h *ReportHandler) DirectoryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.DirectoryPDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Code: "REPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="employee-directory.pdf"`)
	return c.Send(pdfBytes)
}
