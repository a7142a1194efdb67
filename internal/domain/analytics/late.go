package analytics

// LateThresholdHour is the last on-time check-in: 09:30:00 exactly is not late.
const LateThresholdHour = ShiftStartHour

// IsLate classifies a raw check-in value. A missing check-in is not
// lateness; absence of data never counts against the employee.
func IsLate(checkIn string) bool {
	h, ok := ParseClockTime(checkIn)
	return ok && h > LateThresholdHour
}
