package employee

import (
	"strings"

	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName           string   `json:"full_name"`
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	Role               string   `json:"role"`
	PhoneNumber        *string  `json:"phone_number,omitempty"`
	Address            *string  `json:"address,omitempty"`
	OfficeLatitude     *float64 `json:"office_latitude,omitempty"`
	OfficeLongitude    *float64 `json:"office_longitude,omitempty"`
	OfficeRadiusMeters *float64 `json:"office_radius_meters,omitempty"`
	ShiftStart         string   `json:"shift_start"`
	ShiftEnd           string   `json:"shift_end"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Role == "" {
		r.Role = string(RoleKaryawan)
	}
	if !validator.IsInSlice(strings.ToLower(r.Role), []string{"admin", "hrd", "karyawan"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, hrd, karyawan",
		})
	}

	if r.ShiftStart == "" {
		r.ShiftStart = "08:00"
	}
	if r.ShiftEnd == "" {
		r.ShiftEnd = "17:00"
	}
	if !validator.IsValidClock(r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be in HH:MM format",
		})
	}
	if !validator.IsValidClock(r.ShiftEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be in HH:MM format",
		})
	}

	if r.OfficeLatitude != nil && !validator.IsValidLatitude(*r.OfficeLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "office_latitude must be between -90 and 90",
		})
	}
	if r.OfficeLongitude != nil && !validator.IsValidLongitude(*r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "office_longitude must be between -180 and 180",
		})
	}
	if r.OfficeRadiusMeters != nil && *r.OfficeRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "office_radius_meters",
			Message: "office_radius_meters must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID                 string   `json:"-"`
	FullName           *string  `json:"full_name,omitempty"`
	PhoneNumber        *string  `json:"phone_number,omitempty"`
	Address            *string  `json:"address,omitempty"`
	OfficeLatitude     *float64 `json:"office_latitude,omitempty"`
	OfficeLongitude    *float64 `json:"office_longitude,omitempty"`
	OfficeRadiusMeters *float64 `json:"office_radius_meters,omitempty"`
	ShiftStart         *string  `json:"shift_start,omitempty"`
	ShiftEnd           *string  `json:"shift_end,omitempty"`
	IsActive           *bool    `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.ShiftStart != nil && !validator.IsValidClock(*r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be in HH:MM format",
		})
	}
	if r.ShiftEnd != nil && !validator.IsValidClock(*r.ShiftEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be in HH:MM format",
		})
	}
	if r.OfficeLatitude != nil && !validator.IsValidLatitude(*r.OfficeLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "office_latitude must be between -90 and 90",
		})
	}
	if r.OfficeLongitude != nil && !validator.IsValidLongitude(*r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "office_longitude must be between -180 and 180",
		})
	}
	if r.OfficeRadiusMeters != nil && *r.OfficeRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "office_radius_meters",
			Message: "office_radius_meters must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Search   *string `json:"search,omitempty"` // matches name or email
	Limit    int     `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50 // Default limit
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 200",
		})
	}

	if f.Role != nil && !validator.IsInSlice(*f.Role, []string{"admin", "hrd", "karyawan"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, hrd, karyawan",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeResponse never carries the password hash.
type EmployeeResponse struct {
	ID                 string   `json:"id"`
	FullName           string   `json:"full_name"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	PhoneNumber        *string  `json:"phone_number,omitempty"`
	Address            *string  `json:"address,omitempty"`
	OfficeLatitude     *float64 `json:"office_latitude,omitempty"`
	OfficeLongitude    *float64 `json:"office_longitude,omitempty"`
	OfficeRadiusMeters *float64 `json:"office_radius_meters,omitempty"`
	ShiftStart         string   `json:"shift_start"`
	ShiftEnd           string   `json:"shift_end"`
	PhotoURL           *string  `json:"photo_url,omitempty"`
	IsActive           bool     `json:"is_active"`
	CreatedAt          string   `json:"created_at"`
}

type ListEmployeeResponse struct {
	Total     int                `json:"total"`
	Employees []EmployeeResponse `json:"employees"`
}
