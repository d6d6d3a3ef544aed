package employee

import (
	"context"
)

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// Create registers a new employee (admin/hrd)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Me retrieves the authenticated employee's own profile
	Me(ctx context.Context) (EmployeeResponse, error)

	// List retrieves employees with filters (admin/hrd)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// Update updates an employee's profile (admin/hrd)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate disables an employee account (admin/hrd)
	Deactivate(ctx context.Context, id string) error
}
