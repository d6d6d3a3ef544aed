package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Attendance policy
// rejections pass err.Error() through so the measured distance and
// accuracy numbers reach the client.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not checked in today", nil)
	case errors.Is(err, attendance.ErrLowGPSAccuracy):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
