package shift

import (
	"testing"
	"time"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2024, 3, 11, hour, min, sec, 0, time.Local)
}

func TestLateness(t *testing.T) {
	cases := []struct {
		name    string
		actual  time.Time
		start   string
		isLate  bool
		minutes int
	}{
		{"exactly on time", at(8, 0, 0), "08:00", false, 0},
		{"seconds past but under a minute", at(8, 0, 59), "08:00", false, 0},
		{"five and a half minutes late", at(8, 5, 30), "08:00", true, 5},
		{"an hour late", at(9, 0, 0), "08:00", true, 60},
		{"early arrival", at(7, 30, 0), "08:00", false, 0},
	}
	for _, c := range cases {
		got, err := Lateness(c.actual, c.start)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if got.IsLate != c.isLate || got.LateMinutes != c.minutes {
			t.Errorf("%s: got %+v, want isLate=%v minutes=%d", c.name, got, c.isLate, c.minutes)
		}
	}
}

func TestLatenessInvalidClock(t *testing.T) {
	if _, err := Lateness(at(8, 0, 0), "8am"); err == nil {
		t.Error("expected error for malformed shift clock")
	}
}

func TestEarliness(t *testing.T) {
	cases := []struct {
		name    string
		actual  time.Time
		end     string
		isEarly bool
		minutes int
	}{
		{"fifteen minutes early", at(16, 45, 0), "17:00", true, 15},
		{"exactly at shift end", at(17, 0, 0), "17:00", false, 0},
		{"overtime", at(18, 10, 0), "17:00", false, 0},
		{"under a minute early", at(16, 59, 30), "17:00", false, 0},
	}
	for _, c := range cases {
		got, err := Earliness(c.actual, c.end)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if got.IsEarly != c.isEarly || got.EarlyMinutes != c.minutes {
			t.Errorf("%s: got %+v, want isEarly=%v minutes=%d", c.name, got, c.isEarly, c.minutes)
		}
	}
}

func TestDurationMinutes(t *testing.T) {
	got, err := DurationMinutes(at(8, 10, 0), at(17, 5, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 535 {
		t.Errorf("DurationMinutes(08:10, 17:05) = %d, want 535", got)
	}

	// Partial minutes truncate.
	got, err = DurationMinutes(at(8, 0, 30), at(8, 2, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("DurationMinutes with 90s delta = %d, want 1", got)
	}
}

func TestDurationMinutesNegative(t *testing.T) {
	if _, err := DurationMinutes(at(17, 0, 0), at(8, 0, 0)); err == nil {
		t.Error("expected error when check-out precedes check-in")
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{535, "8 jam 55 menit"},
		{60, "1 jam 0 menit"},
		{0, "0 jam 0 menit"},
		{59, "0 jam 59 menit"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.minutes); got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}
