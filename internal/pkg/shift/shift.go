// Package shift evaluates attendance events against an employee's shift
// clock. All comparisons assume the event timestamp and the shift clock
// are in the same timezone the office operates in; callers convert to the
// office zone before calling in here.
package shift

import (
	"fmt"
	"time"
)

// LatenessResult reports whether a check-in missed the shift start.
type LatenessResult struct {
	IsLate      bool
	LateMinutes int
}

// EarlinessResult reports whether a check-out left before the shift end.
type EarlinessResult struct {
	IsEarly      bool
	EarlyMinutes int
}

// ParseClock parses a "HH:MM" shift boundary like "08:00".
func ParseClock(clock string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid shift clock %q: %w", clock, err)
	}
	return t.Hour(), t.Minute(), nil
}

// referenceAt pins the shift clock onto the event's own calendar date,
// seconds zeroed.
func referenceAt(actual time.Time, clock string) (time.Time, error) {
	hour, minute, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(actual.Year(), actual.Month(), actual.Day(), hour, minute, 0, 0, actual.Location()), nil
}

// Lateness compares a check-in time against the shift start. Arriving at
// the shift start exactly is not late; whole minutes only, truncated.
func Lateness(actual time.Time, shiftStart string) (LatenessResult, error) {
	ref, err := referenceAt(actual, shiftStart)
	if err != nil {
		return LatenessResult{}, err
	}
	diff := int(actual.Sub(ref) / time.Minute)
	if diff <= 0 {
		return LatenessResult{}, nil
	}
	return LatenessResult{IsLate: true, LateMinutes: diff}, nil
}

// Earliness compares a check-out time against the shift end. Leaving at
// the shift end exactly is not early.
func Earliness(actual time.Time, shiftEnd string) (EarlinessResult, error) {
	ref, err := referenceAt(actual, shiftEnd)
	if err != nil {
		return EarlinessResult{}, err
	}
	diff := int(ref.Sub(actual) / time.Minute)
	if diff <= 0 {
		return EarlinessResult{}, nil
	}
	return EarlinessResult{IsEarly: true, EarlyMinutes: diff}, nil
}

// DurationMinutes returns the whole minutes worked between check-in and
// check-out. A negative delta means the caller broke the ordering
// invariant; it is reported, not clamped.
func DurationMinutes(checkIn, checkOut time.Time) (int, error) {
	mins := int(checkOut.Sub(checkIn) / time.Minute)
	if mins < 0 {
		return 0, fmt.Errorf("check-out %s precedes check-in %s", checkOut.Format(time.RFC3339), checkIn.Format(time.RFC3339))
	}
	return mins, nil
}

// FormatDuration renders minutes as "X jam Y menit".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d jam %d menit", minutes/60, minutes%60)
}
