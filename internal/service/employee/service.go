package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/absensi-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type employeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// Create registers a new employee account.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		FullName:           strings.TrimSpace(req.FullName),
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:       string(hash),
		Role:               employee.Role(strings.ToLower(req.Role)),
		PhoneNumber:        req.PhoneNumber,
		Address:            req.Address,
		OfficeLatitude:     req.OfficeLatitude,
		OfficeLongitude:    req.OfficeLongitude,
		OfficeRadiusMeters: req.OfficeRadiusMeters,
		ShiftStart:         req.ShiftStart,
		ShiftEnd:           req.ShiftEnd,
		IsActive:           true,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", created.ID, "role", created.Role)

	return mapEmployeeToResponse(created), nil
}

// Get retrieves a single employee by ID.
func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// Me retrieves the caller's own profile from the token identity.
func (s *employeeServiceImpl) Me(ctx context.Context) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return employee.EmployeeResponse{}, fmt.Errorf("employee_id not found in token")
	}

	return s.Get(ctx, employeeID)
}

// List retrieves employees matching the filter.
func (s *employeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Total:     len(responses),
		Employees: responses,
	}, nil
}

// Update applies partial changes to a profile. The read and write run in
// one transaction so two concurrent updates cannot interleave.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var emp employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.employeeRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		emp = applyEmployeeUpdate(current, req)

		return s.employeeRepo.Update(txCtx, emp)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

func applyEmployeeUpdate(emp employee.Employee, req employee.UpdateEmployeeRequest) employee.Employee {
	if req.FullName != nil {
		emp.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.OfficeLatitude != nil {
		emp.OfficeLatitude = req.OfficeLatitude
	}
	if req.OfficeLongitude != nil {
		emp.OfficeLongitude = req.OfficeLongitude
	}
	if req.OfficeRadiusMeters != nil {
		emp.OfficeRadiusMeters = req.OfficeRadiusMeters
	}
	if req.ShiftStart != nil {
		emp.ShiftStart = *req.ShiftStart
	}
	if req.ShiftEnd != nil {
		emp.ShiftEnd = *req.ShiftEnd
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	return emp
}

// Deactivate disables an account. Existing attendance history stays.
func (s *employeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	slog.Info("Employee deactivated", "employee_id", id)
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                 emp.ID,
		FullName:           emp.FullName,
		Email:              emp.Email,
		Role:               string(emp.Role),
		PhoneNumber:        emp.PhoneNumber,
		Address:            emp.Address,
		OfficeLatitude:     emp.OfficeLatitude,
		OfficeLongitude:    emp.OfficeLongitude,
		OfficeRadiusMeters: emp.OfficeRadiusMeters,
		ShiftStart:         emp.ShiftStart,
		ShiftEnd:           emp.ShiftEnd,
		PhotoURL:           emp.PhotoURL,
		IsActive:           emp.IsActive,
		CreatedAt:          emp.CreatedAt.Format(time.RFC3339),
	}
}
