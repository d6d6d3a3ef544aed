package attendance

import (
	"context"
)

// AttendanceService defines the daily attendance state machine and its
// read side.
type AttendanceService interface {
	// CheckIn processes a geofenced, photo-proofed check-in
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes the day's open record
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// Today reports the caller's position in today's state machine
	Today(ctx context.Context) (TodayResponse, error)

	// MyAttendance retrieves the caller's own history
	MyAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves records across employees (admin/hrd)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
