package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee account is inactive")
	ErrEmailExists      = errors.New("email already registered")
)
