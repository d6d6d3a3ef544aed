package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/absensi-backend-go/internal/config"
	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/geo"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/shift"
	"github.com/cmlabs-hris/absensi-backend-go/internal/service/file"
	"github.com/go-chi/jwtauth/v5"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	fileService    file.FileService
	cfg            config.AttendanceConfig
	location       *time.Location

	// now is swappable so shift arithmetic can be pinned in tests.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
	cfg config.AttendanceConfig,
) (attendance.AttendanceService, error) {
	location, err := time.LoadLocation(cfg.OfficeTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid office timezone %q: %w", cfg.OfficeTimezone, err)
	}

	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		fileService:    fileService,
		cfg:            cfg,
		location:       location,
		now:            time.Now,
	}, nil
}

// CheckIn validates and records the day's check-in. The server clock is
// authoritative; a timestamp in the request body would never be trusted.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	emp, err := s.callerEmployee(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.now().In(s.location)
	today := dateOnly(now)

	// Cheap duplicate pre-check. The unique index on (employee_id, date)
	// still backs this up under concurrency.
	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	if existing != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// Accuracy gate runs before the geofence: a fix too imprecise to
	// trust never gets a distance verdict.
	if !geo.IsAccuracyAcceptable(req.AccuracyMeters, s.cfg.MaxGPSAccuracy) {
		return attendance.CheckInResponse{}, fmt.Errorf(
			"%w: accuracy %.2f m exceeds the maximum of %.2f m",
			attendance.ErrLowGPSAccuracy, req.AccuracyMeters, s.cfg.MaxGPSAccuracy,
		)
	}

	officeLat, officeLon, radius := s.resolveOffice(emp)
	fence := geo.Classify(req.Latitude, req.Longitude, officeLat, officeLon, radius)
	if !fence.WithinRadius {
		return attendance.CheckInResponse{}, fmt.Errorf(
			"%w: you are %.2f m from the office, allowed radius is %.0f m",
			attendance.ErrOutsideAllowedRadius, fence.DistanceMeters, radius,
		)
	}

	lateness, err := shift.Lateness(now, emp.ShiftStart)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	status := attendance.StatusAtCheckIn(lateness.IsLate)

	photoPath, err := s.fileService.UploadAttendanceProof(ctx, emp.ID, today, req.File, req.FileHeader.Filename, "check-in")
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to store check-in proof: %w", err)
	}

	record := attendance.Attendance{
		EmployeeID:       emp.ID,
		Date:             today,
		CheckInTime:      now,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
		CheckInAccuracy:  req.AccuracyMeters,
		CheckInPhoto:     photoPath,
		DistanceMeters:   fence.DistanceMeters,
		Status:           status,
		LateMinutes:      lateness.LateMinutes,
		DeviceInfo:       req.DeviceInfo,
	}

	created, err := s.attendanceRepo.InsertCheckIn(ctx, record)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	message := "Check-in berhasil"
	if lateness.IsLate {
		message = fmt.Sprintf("Check-in berhasil, Anda terlambat %d menit", lateness.LateMinutes)
	}

	slog.Info("Check-in recorded", "employee_id", emp.ID, "attendance_id", created.ID, "status", status, "distance_meters", fence.DistanceMeters)

	return attendance.CheckInResponse{
		ID:             created.ID,
		CheckInTime:    created.CheckInTime.Format(time.RFC3339),
		Photo:          created.CheckInPhoto,
		DistanceMeters: created.DistanceMeters,
		Status:         string(created.Status),
		IsLate:         lateness.IsLate,
		LateMinutes:    lateness.LateMinutes,
		Message:        message,
	}, nil
}

// CheckOut closes the day's open record. Location and accuracy are
// validated independently of check-in; having been inside the fence this
// morning earns no pass this evening.
func (s *attendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	emp, err := s.callerEmployee(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := s.now().In(s.location)
	today := dateOnly(now)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if record == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckedOut() {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	if !geo.IsAccuracyAcceptable(req.AccuracyMeters, s.cfg.MaxGPSAccuracy) {
		return attendance.CheckOutResponse{}, fmt.Errorf(
			"%w: accuracy %.2f m exceeds the maximum of %.2f m",
			attendance.ErrLowGPSAccuracy, req.AccuracyMeters, s.cfg.MaxGPSAccuracy,
		)
	}

	officeLat, officeLon, radius := s.resolveOffice(emp)
	fence := geo.Classify(req.Latitude, req.Longitude, officeLat, officeLon, radius)
	if !fence.WithinRadius {
		return attendance.CheckOutResponse{}, fmt.Errorf(
			"%w: you are %.2f m from the office, allowed radius is %.0f m",
			attendance.ErrOutsideAllowedRadius, fence.DistanceMeters, radius,
		)
	}

	earliness, err := shift.Earliness(now, emp.ShiftEnd)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	workMinutes, err := shift.DurationMinutes(record.CheckInTime.In(s.location), now)
	if err != nil {
		// Check-out preceding check-in on the same record means the stored
		// data is broken, not the request.
		slog.Error("Attendance ordering violated", "attendance_id", record.ID, "error", err)
		return attendance.CheckOutResponse{}, fmt.Errorf("attendance record is inconsistent: %w", err)
	}

	status := attendance.StatusAtCheckOut(record.Status, earliness.IsEarly)

	photoPath, err := s.fileService.UploadAttendanceProof(ctx, emp.ID, today, req.File, req.FileHeader.Filename, "check-out")
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to store check-out proof: %w", err)
	}

	updated, err := s.attendanceRepo.UpdateCheckOut(ctx, record.ID, attendance.CheckOutMutation{
		CheckOutTime:      now,
		CheckOutLatitude:  req.Latitude,
		CheckOutLongitude: req.Longitude,
		CheckOutAccuracy:  req.AccuracyMeters,
		CheckOutPhoto:     photoPath,
		WorkMinutes:       workMinutes,
		Status:            status,
		EarlyMinutes:      earliness.EarlyMinutes,
	})
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	duration := shift.FormatDuration(workMinutes)
	message := fmt.Sprintf("Check-out berhasil, durasi kerja %s", duration)
	if earliness.IsEarly {
		message = fmt.Sprintf("Check-out berhasil, Anda pulang %d menit lebih awal", earliness.EarlyMinutes)
	}

	slog.Info("Check-out recorded", "employee_id", emp.ID, "attendance_id", updated.ID, "status", status, "work_minutes", workMinutes)

	return attendance.CheckOutResponse{
		ID:             updated.ID,
		CheckInTime:    updated.CheckInTime.In(s.location).Format(time.RFC3339),
		CheckOutTime:   now.Format(time.RFC3339),
		Photo:          photoPath,
		DistanceMeters: updated.DistanceMeters,
		Duration:       duration,
		WorkMinutes:    workMinutes,
		Status:         string(status),
		IsEarly:        earliness.IsEarly,
		EarlyMinutes:   earliness.EarlyMinutes,
		Message:        message,
	}, nil
}

// Today reports the caller's position in today's state machine.
func (s *attendanceServiceImpl) Today(ctx context.Context) (attendance.TodayResponse, error) {
	employeeID, _, err := s.callerClaims(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	now := s.now().In(s.location)
	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(now))
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	if record == nil {
		return attendance.TodayResponse{
			Message: "Anda belum melakukan check-in hari ini",
		}, nil
	}

	resp := s.mapAttendanceToResponse(*record)
	message := "Anda sudah check-in, jangan lupa check-out"
	if record.CheckedOut() {
		message = "Absensi hari ini sudah lengkap"
	}

	return attendance.TodayResponse{
		HasCheckedIn:  true,
		HasCheckedOut: record.CheckedOut(),
		Attendance:    &resp,
		Message:       message,
	}, nil
}

// MyAttendance retrieves the caller's own history. The employee filter is
// forced to the caller regardless of what the request asked for.
func (s *attendanceServiceImpl) MyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	employeeID, _, err := s.callerClaims(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	filter.EmployeeID = &employeeID
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return s.list(ctx, filter)
}

// ListAttendance retrieves records across employees for reporting roles.
func (s *attendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return s.list(ctx, filter)
}

func (s *attendanceServiceImpl) list(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.mapAttendanceToResponse(record))
	}

	return attendance.ListAttendanceResponse{
		Total:       len(responses),
		Attendances: responses,
	}, nil
}

// callerClaims pulls the authenticated identity from the request token.
func (s *attendanceServiceImpl) callerClaims(ctx context.Context) (employeeID string, role employee.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id not found in token")
	}

	roleStr, _ := claims["role"].(string)
	return employeeID, employee.Role(roleStr), nil
}

// callerEmployee loads the caller's profile and rejects inactive accounts.
func (s *attendanceServiceImpl) callerEmployee(ctx context.Context) (employee.Employee, error) {
	employeeID, _, err := s.callerClaims(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.IsActive {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}

	return emp, nil
}

// resolveOffice returns the geofence for an employee, falling back to the
// configured default office for any field the profile leaves unset.
func (s *attendanceServiceImpl) resolveOffice(emp employee.Employee) (lat, lon, radius float64) {
	lat = s.cfg.OfficeLatitude
	lon = s.cfg.OfficeLongitude
	radius = s.cfg.OfficeRadiusMeters

	if emp.OfficeLatitude != nil && emp.OfficeLongitude != nil {
		lat = *emp.OfficeLatitude
		lon = *emp.OfficeLongitude
	}
	if emp.OfficeRadiusMeters != nil && *emp.OfficeRadiusMeters > 0 {
		radius = *emp.OfficeRadiusMeters
	}

	return lat, lon, radius
}

func (s *attendanceServiceImpl) mapAttendanceToResponse(record attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:             record.ID,
		EmployeeID:     record.EmployeeID,
		EmployeeName:   record.EmployeeName,
		Date:           record.Date.Format("2006-01-02"),
		CheckInTime:    record.CheckInTime.In(s.location).Format(time.RFC3339),
		CheckInPhoto:   record.CheckInPhoto,
		DistanceMeters: record.DistanceMeters,
		WorkMinutes:    record.WorkMinutes,
		Status:         string(record.Status),
		LateMinutes:    record.LateMinutes,
		EarlyMinutes:   record.EarlyMinutes,
		DeviceInfo:     record.DeviceInfo,
	}

	if record.CheckOutTime != nil {
		out := record.CheckOutTime.In(s.location).Format(time.RFC3339)
		resp.CheckOutTime = &out
	}
	if record.CheckOutPhoto != nil {
		resp.CheckOutPhoto = record.CheckOutPhoto
	}
	if record.WorkMinutes != nil {
		d := shift.FormatDuration(*record.WorkMinutes)
		resp.Duration = &d
	}

	return resp
}

// dateOnly truncates a timestamp to its office-local calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
