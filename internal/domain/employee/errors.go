package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmpIDExists         = errors.New("employee id already exists")
	ErrEmailExists         = errors.New("email already registered")
	ErrEmployeeDeactivated = errors.New("employee is deactivated")
)
