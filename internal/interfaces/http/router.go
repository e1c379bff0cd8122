package http

import (
	"github.com/gofiber/fiber/v2"
	gql "github.com/graphql-go/graphql"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/usecase"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/interfaces/graphql"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema    gql.Schema
	ReportUC  *usecase.ReportUseCase
	JWTSecret string
}

// Router registra las rutas: el endpoint GraphQL (público: signup y login
// viven ahí dentro) y las rutas REST auxiliares protegidas por Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	app.Post("/graphql", graphql.Handler(deps.Schema))

	api := app.Group("/api")
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/employees/report", reportHandler.DirectoryPDF)
}
