package attendance

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/absensi-backend-go/internal/pkg/validator"
)

// CheckInRequest carries one check-in submission. The employee identity
// comes from the access token, never from the body.
type CheckInRequest struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	AccuracyMeters  float64 `json:"accuracy"`
	DeviceInfo      string  `json:"-"`
	PhotoPath       *string `json:"-"`
	File            multipart.File        `json:"-"`
	FileHeader      *multipart.FileHeader `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	return validateSubmission(r.Latitude, r.Longitude, r.AccuracyMeters, r.FileHeader)
}

type CheckOutRequest struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	AccuracyMeters  float64 `json:"accuracy"`
	DeviceInfo      string  `json:"-"`
	PhotoPath       *string `json:"-"`
	File            multipart.File        `json:"-"`
	FileHeader      *multipart.FileHeader `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	return validateSubmission(r.Latitude, r.Longitude, r.AccuracyMeters, r.FileHeader)
}

func validateSubmission(lat, lon, accuracy float64, fileHeader *multipart.FileHeader) error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(lon) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if accuracy < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy",
			Message: "accuracy must not be negative",
		})
	}

	if fileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo is required",
		})
	} else {
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if fileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "attendance proof photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CheckInResponse reports the outcome of a successful check-in.
type CheckInResponse struct {
	ID             string  `json:"id"`
	CheckInTime    string  `json:"check_in_time"`
	Photo          string  `json:"photo"`
	DistanceMeters float64 `json:"distance_meters"`
	Status         string  `json:"status"`
	IsLate         bool    `json:"is_late"`
	LateMinutes    int     `json:"late_minutes"`
	Message        string  `json:"message"`
}

// CheckOutResponse reports the outcome of a successful check-out.
type CheckOutResponse struct {
	ID             string  `json:"id"`
	CheckInTime    string  `json:"check_in_time"`
	CheckOutTime   string  `json:"check_out_time"`
	Photo          string  `json:"photo"`
	DistanceMeters float64 `json:"distance_meters"`
	Duration       string  `json:"duration"`
	WorkMinutes    int     `json:"work_minutes"`
	Status         string  `json:"status"`
	IsEarly        bool    `json:"is_early"`
	EarlyMinutes   int     `json:"early_minutes"`
	Message        string  `json:"message"`
}

// AttendanceResponse is the read model for history and reporting.
type AttendanceResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeName   *string  `json:"employee_name,omitempty"`
	Date           string   `json:"date"`
	CheckInTime    string   `json:"check_in_time"`
	CheckOutTime   *string  `json:"check_out_time,omitempty"`
	CheckInPhoto   string   `json:"check_in_photo"`
	CheckOutPhoto  *string  `json:"check_out_photo,omitempty"`
	DistanceMeters float64  `json:"distance_meters"`
	WorkMinutes    *int     `json:"work_minutes,omitempty"`
	Duration       *string  `json:"duration,omitempty"`
	Status         string   `json:"status"`
	LateMinutes    int      `json:"late_minutes"`
	EarlyMinutes   *int     `json:"early_minutes,omitempty"`
	DeviceInfo     string   `json:"device_info,omitempty"`
}

// TodayResponse answers "where am I in today's state machine".
type TodayResponse struct {
	HasCheckedIn  bool                `json:"has_checked_in"`
	HasCheckedOut bool                `json:"has_checked_out"`
	Attendance    *AttendanceResponse `json:"attendance,omitempty"`
	Message       string              `json:"message"`
}

// AttendanceFilter narrows history queries. Results are always ordered
// newest check-in first.
type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`
	Limit      int     `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 30 // Default limit
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 200",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Hadir, Terlambat, Pulang Cepat",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListAttendanceResponse wraps a history query result.
type ListAttendanceResponse struct {
	Total       int                  `json:"total"`
	Attendances []AttendanceResponse `json:"attendances"`
}
