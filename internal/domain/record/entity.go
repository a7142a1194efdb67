package record

import (
	"strconv"
	"time"
)

// Attendance status as written by the upstream export pipeline.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
)

// AttendanceRecord is one employee-day as produced by the device export
// pipeline. Clock fields keep the raw device strings: "HH:MM[:SS]", an empty
// string, or the literal "N/A" when the sensor recorded nothing. The engine
// never rewrites a record; dedup of (employee_id, date) is the importer's job.
type AttendanceRecord struct {
	ID            string
	EmployeeID    string
	EmployeeName  string
	Date          string // YYYY-MM-DD, naive local calendar date
	CheckIn       string
	CheckOut      string
	ReportedHours string // working hours as calculated by the device, may be "N/A"
	Status        string
	LateMinutes   int
	LateFlag      bool
	CreatedAt     time.Time
}

// ReportedWorkingHours parses the device-calculated duration. ok is false
// when the field is missing, the sentinel, or otherwise non-numeric.
func (r AttendanceRecord) ReportedWorkingHours() (float64, bool) {
	v, err := strconv.ParseFloat(r.ReportedHours, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Day parses the record's calendar date.
func (r AttendanceRecord) Day() (time.Time, bool) {
	t, err := time.Parse("2006-01-02", r.Date)
	return t, err == nil
}
