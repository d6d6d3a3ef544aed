package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// daily one-record invariant is enforced here, not by read-then-write in
// the service: InsertCheckIn relies on a unique (employee_id, date) key
// and UpdateCheckOut is conditional on the record still being open, so
// concurrent double-submits collapse into the duplicate rejections.
type AttendanceRepository interface {
	// InsertCheckIn creates the day's record. Returns ErrAlreadyCheckedIn
	// when a record for the employee and date already exists.
	InsertCheckIn(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the day's record, nil when absent.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// UpdateCheckOut applies the check-out mutation to an open record.
	// Returns ErrAlreadyCheckedOut when the record is already closed and
	// ErrAttendanceNotFound when no such record exists.
	UpdateCheckOut(ctx context.Context, recordID string, mut CheckOutMutation) (Attendance, error)

	// List retrieves records with filters, newest check-in first.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
