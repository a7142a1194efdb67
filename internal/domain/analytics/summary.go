package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/record"
)

// Summarize derives the full statistics object for one query's record set.
// rng is optional: without it absence detection is skipped (the list stays
// empty, not an error) and TotalDays falls back to the record count.
// The function is pure; it never mutates records and holds no state between
// calls, so a new record set or range always yields fresh numbers.
func Summarize(records []record.AttendanceRecord, rng *DateRange) Summary {
	sum := Summary{
		AbsentDates:       []DayEntry{},
		ExtraWorkingDates: extraWorkingDates(records),
	}

	for _, rec := range records {
		if rec.Status == record.StatusPresent {
			sum.TotalAttendance++
		}
	}

	if rng != nil {
		sum.TotalDays = rng.Days()
		sum.AbsentDates = absentDates(records, *rng)
	} else {
		sum.TotalDays = len(records)
	}

	sum.AverageWorkingHours = averageWorkingHours(records)
	sum.AttendanceDistribution = AttendanceDistribution(records)
	sum.CheckInDistribution = CheckInDistribution(records)
	sum.CheckOutDistribution = CheckOutDistribution(records)

	return sum
}

// Metrics derives the per-row annotations for the attendance table.
func Metrics(rec record.AttendanceRecord) DayMetrics {
	return DayMetrics{
		WorkingHours: WorkingHours(rec, true),
		IsLate:       IsLate(rec.CheckIn),
	}
}

// absentDates walks every calendar day in the range. A day is absent when no
// record exists and it is a weekday, or when a record explicitly carries the
// ABSENT status; the explicit marking is reported even on a weekend because
// it reflects a genuine upstream decision. Weekends with no record are never
// auto-absent.
func absentDates(records []record.AttendanceRecord, rng DateRange) []DayEntry {
	byDate := make(map[string]record.AttendanceRecord, len(records))
	for _, rec := range records {
		if _, seen := byDate[rec.Date]; !seen {
			byDate[rec.Date] = rec
		}
	}

	absent := []DayEntry{}
	for d := rng.From; !d.After(rng.To); d = d.AddDate(0, 0, 1) {
		day := d.Format(dateLayout)
		rec, found := byDate[day]
		switch {
		case found && rec.Status == record.StatusAbsent:
			absent = append(absent, DayEntry{Date: day, Weekday: d.Weekday().String()})
		case !found && !isWeekend(d):
			absent = append(absent, DayEntry{Date: day, Weekday: d.Weekday().String()})
		}
	}
	return absent
}

// extraWorkingDates lists PRESENT records falling on a Saturday or Sunday,
// ascending by date.
func extraWorkingDates(records []record.AttendanceRecord) []DayEntry {
	extra := []DayEntry{}
	for _, rec := range records {
		if rec.Status != record.StatusPresent {
			continue
		}
		d, ok := rec.Day()
		if !ok || !isWeekend(d) {
			continue
		}
		extra = append(extra, DayEntry{Date: rec.Date, Weekday: d.Weekday().String()})
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Date < extra[j].Date })
	return extra
}

// averageWorkingHours averages capped hours over records with strictly
// positive capped hours, rounded to 2 decimals. NaN hours from garbage clock
// strings fail the > 0 test and are excluded.
func averageWorkingHours(records []record.AttendanceRecord) float64 {
	var total float64
	var n int
	for _, rec := range records {
		if h := WorkingHours(rec, true); h > 0 {
			total += h
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(total/float64(n)*100) / 100
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
