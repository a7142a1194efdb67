package analytics

import (
	"math"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/record"
)

// Shift policy. The contractual day runs 09:30 to 17:00 with 7.5 payable hours.
const (
	ShiftStartHour = 9.5
	ShiftEndHour   = 17.0
	PolicyMaxHours = 7.5
)

// WorkingHours computes the effective worked duration for one record.
//
// With only one clock event the missing side is filled from the shift
// schedule: check-out alone assumes an on-time start, check-in alone assumes
// the shift ran to its scheduled end. With both events present the device's
// own duration is preferred over the naive clock difference when it parses
// as a number.
//
// Capped mode clamps into [0, PolicyMaxHours] for payroll-style totals.
// Uncapped mode passes the raw estimate through, including negatives from a
// check-out before the assumed shift start; trend charts want that signal.
func WorkingHours(rec record.AttendanceRecord, capped bool) float64 {
	in, hasIn := ParseClockTime(rec.CheckIn)
	out, hasOut := ParseClockTime(rec.CheckOut)

	var hours float64
	switch {
	case !hasIn && !hasOut:
		return 0
	case !hasIn:
		hours = out - ShiftStartHour
	case !hasOut:
		hours = ShiftEndHour - in
	default:
		hours = out - in
		if reported, ok := rec.ReportedWorkingHours(); ok {
			hours = reported
		}
	}

	if capped {
		// math.Min/Max propagate NaN, so a garbage clock string stays
		// unusable instead of clamping to a plausible value.
		return math.Min(math.Max(hours, 0), PolicyMaxHours)
	}
	return hours
}
