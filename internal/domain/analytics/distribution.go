package analytics

import (
	"math"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/record"
)

// clockBucket is one named time-of-day range. A parsed time lands in the
// first bucket whose upper bound is strictly greater than it; the final
// bucket is the overflow and absorbs everything left, including NaN from
// malformed strings, so the counts always partition the record set.
type clockBucket struct {
	name  string
	upper float64 // exclusive upper bound in fractional hours
}

var checkInBuckets = []clockBucket{
	{"Before 8 AM", 8},
	{"8:00–8:59 AM", 9},
	{"9:00–9:29 AM", 9.5},
	{"9:30–10:29 AM (Late)", 10.5},
	{"10:30–11:29 AM (Late)", 11.5},
	{"11:30 AM–12:29 PM (Late)", 12.5},
	{"After 12:30 PM (Late)", math.Inf(1)},
}

var checkOutBuckets = []clockBucket{
	{"Before 5:00 PM (Missed)", 17},
	{"5:00–6:00 PM", 18},
	{"6:00–7:00 PM (OT)", 19},
	{"7:00–8:00 PM (OT)", 20},
	{"After 8:00 PM (OT)", math.Inf(1)},
}

const (
	missingCheckInBucket  = "Missing Check-In"
	missingCheckOutBucket = "Missing Check-Out"
)

// CheckInDistribution buckets every record's check-in time for the morning
// histogram. Records without a check-in count in the trailing Missing bucket.
func CheckInDistribution(records []record.AttendanceRecord) []BucketCount {
	values := make([]string, 0, len(records))
	for _, rec := range records {
		values = append(values, rec.CheckIn)
	}
	return binClockTimes(values, checkInBuckets, missingCheckInBucket)
}

// CheckOutDistribution buckets every record's check-out time for the evening
// histogram, with overtime ranges past 6 PM.
func CheckOutDistribution(records []record.AttendanceRecord) []BucketCount {
	values := make([]string, 0, len(records))
	for _, rec := range records {
		values = append(values, rec.CheckOut)
	}
	return binClockTimes(values, checkOutBuckets, missingCheckOutBucket)
}

// AttendanceDistribution breaks the record set down by day outcome for the
// summary chart: present on time, present but late, or absent.
func AttendanceDistribution(records []record.AttendanceRecord) []BucketCount {
	var onTime, late, absent int
	for _, rec := range records {
		switch {
		case rec.Status == record.StatusAbsent:
			absent++
		case IsLate(rec.CheckIn):
			late++
		default:
			onTime++
		}
	}
	return []BucketCount{
		{Bucket: "On Time", Count: onTime},
		{Bucket: "Late", Count: late},
		{Bucket: "Absent", Count: absent},
	}
}

func binClockTimes(values []string, buckets []clockBucket, missingName string) []BucketCount {
	counts := make([]int, len(buckets)+1)
	for _, v := range values {
		h, ok := ParseClockTime(v)
		if !ok {
			counts[len(buckets)]++
			continue
		}
		idx := len(buckets) - 1
		for i, b := range buckets[:len(buckets)-1] {
			if h < b.upper {
				idx = i
				break
			}
		}
		counts[idx]++
	}

	out := make([]BucketCount, 0, len(buckets)+1)
	for i, b := range buckets {
		out = append(out, BucketCount{Bucket: b.name, Count: counts[i]})
	}
	return append(out, BucketCount{Bucket: missingName, Count: counts[len(buckets)]})
}
