package attendance

import "errors"

// Attendance domain errors. Validation-kind errors are terminal,
// user-facing rejections; the caller corrects its input and resubmits,
// nothing is retried here.
var (
	// Check-in errors
	ErrAlreadyCheckedIn     = errors.New("you have already checked in today")
	ErrLowGPSAccuracy       = errors.New("GPS accuracy is too poor")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed office radius")

	// Check-out errors
	ErrNotCheckedIn      = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
