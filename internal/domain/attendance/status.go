package attendance

// Status is the closed set of daily attendance labels.
type Status string

const (
	StatusHadir       Status = "Hadir"
	StatusTerlambat   Status = "Terlambat"
	StatusPulangCepat Status = "Pulang Cepat"
)

// ValidStatuses lists every label a record can carry, for filter validation.
var ValidStatuses = []string{
	string(StatusHadir),
	string(StatusTerlambat),
	string(StatusPulangCepat),
}

// StatusAtCheckIn labels a fresh record from the lateness verdict.
func StatusAtCheckIn(isLate bool) Status {
	if isLate {
		return StatusTerlambat
	}
	return StatusHadir
}

// StatusAtCheckOut combines the check-in status with the early-departure
// verdict. Lateness is sticky: an employee who arrived late stays
// Terlambat even when leaving early, while an on-time arrival becomes
// Pulang Cepat. The asymmetry is intentional business policy.
func StatusAtCheckOut(checkInStatus Status, isEarly bool) Status {
	if checkInStatus == StatusTerlambat {
		return StatusTerlambat
	}
	if isEarly {
		return StatusPulangCepat
	}
	return StatusHadir
}
