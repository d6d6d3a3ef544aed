package employee

import (
	"time"
)

type Employee struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	PhoneNumber  *string
	Address      *string

	// Office override; nil fields fall back to the configured default
	// office when attendance is validated.
	OfficeLatitude     *float64
	OfficeLongitude    *float64
	OfficeRadiusMeters *float64

	// Shift boundaries as "HH:MM" office-local clocks.
	ShiftStart string
	ShiftEnd   string

	PhotoURL  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHRD      Role = "hrd"
	RoleKaryawan Role = "karyawan"
)

// CanViewAllAttendance reports whether the role may read other
// employees' records.
func (r Role) CanViewAllAttendance() bool {
	return r == RoleAdmin || r == RoleHRD
}
