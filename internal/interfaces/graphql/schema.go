// Package graphql expone las operaciones de la API como un único esquema
// query/mutation. Dos estilos de error conviven a propósito, según contrato:
//
//   - envelope: signup, login, addNewEmployee, updateEmployeeByEid y
//     deleteEmployeeByEid atrapan todo fallo y lo devuelven como
//     {success: false, message}; jamás producen un error de protocolo.
//   - propagante: getAllEmployees, searchEmployeeByEid y
//     searchEmployeeByDesignationOrDepartment retornan el error al motor
//     GraphQL, que lo publica en el array errors de la respuesta (solo
//     mensaje y ubicación; nunca stack traces internos).
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/auth"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/dto"
	"github.com/wardennkoil/COMP3133-101468805-assignment1/internal/application/usecase"
)

// Resolver agrupa los casos de uso que respaldan el esquema.
type Resolver struct {
	Auth      *auth.AuthUseCase
	Employees *usecase.EmployeeUseCase
}

// NewSchema construye el esquema ejecutable con los resolvers cerrados
// sobre los casos de uso.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"created_at": &graphql.Field{Type: graphql.String},
			"updated_at": &graphql.Field{Type: graphql.String},
		},
	})

	employeeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Employee",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"first_name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"last_name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"gender":          &graphql.Field{Type: graphql.String},
			"designation":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"salary":          &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"date_of_joining": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"department":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"employee_photo":  &graphql.Field{Type: graphql.String},
			"created_at":      &graphql.Field{Type: graphql.String},
			"updated_at":      &graphql.Field{Type: graphql.String},
		},
	})

	signupResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SignupResult",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":    &graphql.Field{Type: userType},
		},
	})

	loginResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LoginResult",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"token":   &graphql.Field{Type: graphql.String},
		},
	})

	employeeResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "EmployeeResult",
		Fields: graphql.Fields{
			"success":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"employee": &graphql.Field{Type: employeeType},
		},
	})

	deleteResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DeleteResult",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(loginResultType),
				Args: graphql.FieldConfigArgument{
					"usernameOrEmail": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					token, err := r.Auth.Login(dto.LoginRequest{
						UsernameOrEmail: strArg(p, "usernameOrEmail"),
						Password:        strArg(p, "password"),
					})
					if err != nil {
						return &dto.LoginResult{Success: false, Message: err.Error()}, nil
					}
					return &dto.LoginResult{Success: true, Message: "Login successful.", Token: token}, nil
				},
			},
			"getAllEmployees": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(employeeType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Employees.GetAll()
				},
			},
			"searchEmployeeByEid": &graphql.Field{
				Type: employeeType,
				Args: graphql.FieldConfigArgument{
					"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, err := r.Employees.GetByEid(strArg(p, "eid"))
					if err != nil {
						return nil, err
					}
					if e == nil {
						// Ausencia es null, no error, en esta operación.
						return nil, nil
					}
					return e, nil
				},
			},
			"searchEmployeeByDesignationOrDepartment": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(employeeType))),
				Args: graphql.FieldConfigArgument{
					"designation": &graphql.ArgumentConfig{Type: graphql.String},
					"department":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Employees.SearchByDesignationOrDepartment(
						strArg(p, "designation"), strArg(p, "department"))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(signupResultType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := r.Auth.Signup(dto.SignupRequest{
						Username: strArg(p, "username"),
						Email:    strArg(p, "email"),
						Password: strArg(p, "password"),
					})
					if err != nil {
						return &dto.SignupResult{Success: false, Message: err.Error()}, nil
					}
					return &dto.SignupResult{Success: true, Message: "User created successfully.", User: user}, nil
				},
			},
			"addNewEmployee": &graphql.Field{
				Type: graphql.NewNonNull(employeeResultType),
				Args: graphql.FieldConfigArgument{
					"first_name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"last_name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"gender":          &graphql.ArgumentConfig{Type: graphql.String},
					"designation":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"salary":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"date_of_joining": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"department":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"employee_photo":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, err := r.Employees.Add(dto.AddEmployeeRequest{
						FirstName:     strArg(p, "first_name"),
						LastName:      strArg(p, "last_name"),
						Email:         strArg(p, "email"),
						Gender:        strArg(p, "gender"),
						Designation:   strArg(p, "designation"),
						Salary:        decimal.NewFromFloat(floatArg(p, "salary")),
						DateOfJoining: strArg(p, "date_of_joining"),
						Department:    strArg(p, "department"),
						EmployeePhoto: strArg(p, "employee_photo"),
					})
					if err != nil {
						return &dto.EmployeeResult{Success: false, Message: err.Error()}, nil
					}
					return &dto.EmployeeResult{Success: true, Message: "Employee created successfully.", Employee: e}, nil
				},
			},
			"updateEmployeeByEid": &graphql.Field{
				Type: graphql.NewNonNull(employeeResultType),
				Args: graphql.FieldConfigArgument{
					"eid":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"first_name":      &graphql.ArgumentConfig{Type: graphql.String},
					"last_name":       &graphql.ArgumentConfig{Type: graphql.String},
					"email":           &graphql.ArgumentConfig{Type: graphql.String},
					"gender":          &graphql.ArgumentConfig{Type: graphql.String},
					"designation":     &graphql.ArgumentConfig{Type: graphql.String},
					"salary":          &graphql.ArgumentConfig{Type: graphql.Float},
					"date_of_joining": &graphql.ArgumentConfig{Type: graphql.String},
					"department":      &graphql.ArgumentConfig{Type: graphql.String},
					"employee_photo":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					e, err := r.Employees.UpdateByEid(strArg(p, "eid"), updateInput(p))
					if err != nil {
						return &dto.EmployeeResult{Success: false, Message: err.Error()}, nil
					}
					return &dto.EmployeeResult{Success: true, Message: "Employee updated successfully.", Employee: e}, nil
				},
			},
			"deleteEmployeeByEid": &graphql.Field{
				Type: graphql.NewNonNull(deleteResultType),
				Args: graphql.FieldConfigArgument{
					"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := r.Employees.DeleteByEid(strArg(p, "eid")); err != nil {
						return &dto.DeleteResult{Success: false, Message: err.Error()}, nil
					}
					return &dto.DeleteResult{Success: true, Message: "Employee deleted successfully."}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// updateInput traduce los argumentos presentes a la estructura de slots
// opcionales: solo las claves enviadas por el caller producen puntero no-nil,
// así ningún campo desconocido puede colarse al registro.
func updateInput(p graphql.ResolveParams) dto.UpdateEmployeeRequest {
	var in dto.UpdateEmployeeRequest
	in.FirstName = optStrArg(p, "first_name")
	in.LastName = optStrArg(p, "last_name")
	in.Email = optStrArg(p, "email")
	in.Gender = optStrArg(p, "gender")
	in.Designation = optStrArg(p, "designation")
	in.Department = optStrArg(p, "department")
	in.EmployeePhoto = optStrArg(p, "employee_photo")
	in.DateOfJoining = optStrArg(p, "date_of_joining")
	if v, ok := p.Args["salary"]; ok {
		if f, ok := v.(float64); ok {
			d := decimal.NewFromFloat(f)
			in.Salary = &d
		}
	}
	return in
}

func strArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func optStrArg(p graphql.ResolveParams, name string) *string {
	v, ok := p.Args[name]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func floatArg(p graphql.ResolveParams, name string) float64 {
	v, _ := p.Args[name].(float64)
	return v
}
