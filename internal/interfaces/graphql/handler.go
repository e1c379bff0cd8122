package graphql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// request cuerpo estándar de una petición GraphQL sobre HTTP.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler devuelve el handler Fiber del endpoint único POST /graphql.
// El resultado siempre es 200 con data/errors en el cuerpo: los fallos de
// las operaciones envelope viajan en data, los de las propagantes en errors
// (mensaje y ubicación; los stack traces internos no salen al cliente).
func Handler(schema graphql.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req request
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []fiber.Map{{"message": "invalid request body"}},
			})
		}
		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.UserContext(),
		})
		return c.JSON(result)
	}
}
