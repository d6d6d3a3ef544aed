package attendance

import "testing"

func TestStatusAtCheckIn(t *testing.T) {
	if got := StatusAtCheckIn(false); got != StatusHadir {
		t.Errorf("StatusAtCheckIn(false) = %q, want %q", got, StatusHadir)
	}
	if got := StatusAtCheckIn(true); got != StatusTerlambat {
		t.Errorf("StatusAtCheckIn(true) = %q, want %q", got, StatusTerlambat)
	}
}

func TestStatusAtCheckOut(t *testing.T) {
	cases := []struct {
		name    string
		checkIn Status
		isEarly bool
		want    Status
	}{
		{"on time, full day", StatusHadir, false, StatusHadir},
		{"on time, leaves early", StatusHadir, true, StatusPulangCepat},
		{"late, full day", StatusTerlambat, false, StatusTerlambat},
		{"late wins over early departure", StatusTerlambat, true, StatusTerlambat},
	}
	for _, c := range cases {
		if got := StatusAtCheckOut(c.checkIn, c.isEarly); got != c.want {
			t.Errorf("%s: StatusAtCheckOut(%q, %v) = %q, want %q", c.name, c.checkIn, c.isEarly, got, c.want)
		}
	}
}
