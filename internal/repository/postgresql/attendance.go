package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/absensi-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.check_in_time, a.check_in_latitude, a.check_in_longitude, a.check_in_accuracy, a.check_in_photo,
	a.check_out_time, a.check_out_latitude, a.check_out_longitude, a.check_out_accuracy, a.check_out_photo,
	a.distance_meters, a.work_minutes, a.status, a.late_minutes, a.early_minutes, a.device_info,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckInTime, &att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInAccuracy, &att.CheckInPhoto,
		&att.CheckOutTime, &att.CheckOutLatitude, &att.CheckOutLongitude, &att.CheckOutAccuracy, &att.CheckOutPhoto,
		&att.DistanceMeters, &att.WorkMinutes, &att.Status, &att.LateMinutes, &att.EarlyMinutes, &att.DeviceInfo,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// InsertCheckIn implements attendance.AttendanceRepository. The unique
// index on (employee_id, date) is the race guard: a concurrent
// double-submit loses here with a 23505, which is the same rejection as
// an ordinary duplicate check-in.
func (r *attendanceRepository) InsertCheckIn(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, date,
			check_in_time, check_in_latitude, check_in_longitude, check_in_accuracy, check_in_photo,
			distance_meters, status, late_minutes, device_info
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date,
		att.CheckInTime, att.CheckInLatitude, att.CheckInLongitude, att.CheckInAccuracy, att.CheckInPhoto,
		att.DistanceMeters, att.Status, att.LateMinutes, att.DeviceInfo,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to insert check-in: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.employee_id = $1 AND a.date = $2 LIMIT 1`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// UpdateCheckOut implements attendance.AttendanceRepository. The update
// only matches while check_out_time is still NULL; losing that condition
// to a concurrent check-out surfaces as ErrAlreadyCheckedOut.
func (r *attendanceRepository) UpdateCheckOut(ctx context.Context, recordID string, mut attendance.CheckOutMutation) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances a SET
			check_out_time = $1,
			check_out_latitude = $2,
			check_out_longitude = $3,
			check_out_accuracy = $4,
			check_out_photo = $5,
			work_minutes = $6,
			status = $7,
			early_minutes = $8,
			updated_at = $9
		WHERE a.id = $10
		  AND a.check_out_time IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query,
		mut.CheckOutTime, mut.CheckOutLatitude, mut.CheckOutLongitude,
		mut.CheckOutAccuracy, mut.CheckOutPhoto,
		mut.WorkMinutes, mut.Status, mut.EarlyMinutes,
		time.Now(), recordID,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the record never existed or it is already closed.
			var exists bool
			checkErr := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM attendances WHERE id = $1)`, recordID).Scan(&exists)
			if checkErr != nil {
				return attendance.Attendance{}, fmt.Errorf("failed to inspect attendance after conflict: %w", checkErr)
			}
			if exists {
				return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
			}
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update check-out: %w", err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.check_in_time DESC
		LIMIT $%d
	`, attendanceColumns, baseWhere, argIdx)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date,
			&att.CheckInTime, &att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInAccuracy, &att.CheckInPhoto,
			&att.CheckOutTime, &att.CheckOutLatitude, &att.CheckOutLongitude, &att.CheckOutAccuracy, &att.CheckOutPhoto,
			&att.DistanceMeters, &att.WorkMinutes, &att.Status, &att.LateMinutes, &att.EarlyMinutes, &att.DeviceInfo,
			&att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, nil
}
