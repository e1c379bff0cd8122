package domain

import "errors"

// Errores de dominio (sin dependencias externas). El texto es el mensaje
// que ve el cliente en el envelope o en el error de protocolo, por eso
// va en inglés y con la redacción exacta del contrato.
var (
	ErrUserNotFound       = errors.New("User not found.")
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	ErrUserAlreadyExists  = errors.New("User with this username or email already exists.")
	ErrSignupFieldsEmpty  = errors.New("Username, email and password are required.")

	ErrEmployeeNotFound    = errors.New("Employee not found.")
	ErrEmployeeEmailExists = errors.New("Employee with this email already exists.")
	ErrSalaryBelowMinimum  = errors.New("Salary must be at least 1000.")
	ErrMissingSearchFilter = errors.New("At least one of designation or department is required.")
	ErrInvalidGender       = errors.New("Gender must be one of Male, Female or Other.")
	ErrEmployeeFieldsEmpty = errors.New("First name, last name, email, designation and department are required.")
	ErrInvalidDate         = errors.New("Invalid date_of_joining: expected an ISO-8601 date.")
)
