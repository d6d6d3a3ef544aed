package attendance

import (
	"time"
)

// Attendance is the single record for one employee on one calendar day.
// Check-out fields stay nil until the matching check-out happens.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar day, office-local

	CheckInTime     time.Time
	CheckInLatitude float64
	CheckInLongitude float64
	CheckInAccuracy float64
	CheckInPhoto    string

	CheckOutTime      *time.Time
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	CheckOutAccuracy  *float64
	CheckOutPhoto     *string

	DistanceMeters float64 // distance from office at check-in
	WorkMinutes    *int    // set by check-out only
	Status         Status
	LateMinutes    int
	EarlyMinutes   *int
	DeviceInfo     string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for reporting
	EmployeeName *string
}

// CheckedOut reports whether the record reached its terminal state.
func (a *Attendance) CheckedOut() bool {
	return a.CheckOutTime != nil
}

// CheckOutMutation is the one-shot update applied to an open record.
type CheckOutMutation struct {
	CheckOutTime      time.Time
	CheckOutLatitude  float64
	CheckOutLongitude float64
	CheckOutAccuracy  float64
	CheckOutPhoto     string
	WorkMinutes       int
	Status            Status
	EarlyMinutes      int
}
