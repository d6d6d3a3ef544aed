package employee

import (
	"context"
)

// EmployeeRepository defines data access for employee profiles.
type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email, used by login
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// Update updates mutable profile fields
	Update(ctx context.Context, emp Employee) error

	// List retrieves employees with filters
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	// Deactivate flips the active flag off
	Deactivate(ctx context.Context, id string) error
}
