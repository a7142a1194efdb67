package analytics

import (
	"testing"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucketTotal(counts []BucketCount) int {
	total := 0
	for _, b := range counts {
		total += b.Count
	}
	return total
}

func findBucket(t *testing.T, counts []BucketCount, name string) int {
	t.Helper()
	for _, b := range counts {
		if b.Bucket == name {
			return b.Count
		}
	}
	t.Fatalf("bucket %q not found", name)
	return 0
}

func TestCheckInDistribution_Boundaries(t *testing.T) {
	records := []record.AttendanceRecord{
		dayRec("2024-01-08", record.StatusPresent, "07:59:59", "17:00:00"),
		dayRec("2024-01-09", record.StatusPresent, "08:00:00", "17:00:00"),
		dayRec("2024-01-10", record.StatusPresent, "09:00:00", "17:00:00"),
		dayRec("2024-01-11", record.StatusPresent, "09:30:00", "17:00:00"),
		dayRec("2024-01-12", record.StatusPresent, "10:30:00", "17:00:00"),
		dayRec("2024-01-15", record.StatusPresent, "11:30:00", "17:00:00"),
		dayRec("2024-01-16", record.StatusPresent, "12:30:00", "17:00:00"),
		dayRec("2024-01-17", record.StatusAbsent, "", ""),
	}

	dist := CheckInDistribution(records)

	assert.Equal(t, 1, findBucket(t, dist, "Before 8 AM"))
	assert.Equal(t, 1, findBucket(t, dist, "8:00–8:59 AM"))
	assert.Equal(t, 1, findBucket(t, dist, "9:00–9:29 AM"))
	assert.Equal(t, 1, findBucket(t, dist, "9:30–10:29 AM (Late)"))
	assert.Equal(t, 1, findBucket(t, dist, "10:30–11:29 AM (Late)"))
	assert.Equal(t, 1, findBucket(t, dist, "11:30 AM–12:29 PM (Late)"))
	assert.Equal(t, 1, findBucket(t, dist, "After 12:30 PM (Late)"))
	assert.Equal(t, 1, findBucket(t, dist, "Missing Check-In"))
}

func TestCheckOutDistribution_Boundaries(t *testing.T) {
	records := []record.AttendanceRecord{
		dayRec("2024-01-08", record.StatusPresent, "09:00:00", "16:59:59"),
		dayRec("2024-01-09", record.StatusPresent, "09:00:00", "17:00:00"),
		dayRec("2024-01-10", record.StatusPresent, "09:00:00", "18:00:00"),
		dayRec("2024-01-11", record.StatusPresent, "09:00:00", "19:30:00"),
		dayRec("2024-01-12", record.StatusPresent, "09:00:00", "20:00:00"),
		dayRec("2024-01-15", record.StatusPresent, "09:00:00", "N/A"),
	}

	dist := CheckOutDistribution(records)

	assert.Equal(t, 1, findBucket(t, dist, "Before 5:00 PM (Missed)"))
	assert.Equal(t, 1, findBucket(t, dist, "5:00–6:00 PM"))
	assert.Equal(t, 1, findBucket(t, dist, "6:00–7:00 PM (OT)"))
	assert.Equal(t, 1, findBucket(t, dist, "7:00–8:00 PM (OT)"))
	assert.Equal(t, 1, findBucket(t, dist, "After 8:00 PM (OT)"))
	assert.Equal(t, 1, findBucket(t, dist, "Missing Check-Out"))
}

func TestDistributions_PartitionRecordSet(t *testing.T) {
	records := []record.AttendanceRecord{
		dayRec("2024-01-08", record.StatusPresent, "09:00:00", "17:30:00"),
		dayRec("2024-01-09", record.StatusPresent, "", "18:30:00"),
		dayRec("2024-01-10", record.StatusAbsent, "N/A", "N/A"),
		dayRec("2024-01-11", record.StatusPresent, "9:xx:00", "17:00:00"), // malformed check-in
		dayRec("2024-01-12", record.StatusPresent, "13:45:00", ""),
	}

	checkIn := CheckInDistribution(records)
	checkOut := CheckOutDistribution(records)

	assert.Equal(t, len(records), bucketTotal(checkIn), "check-in counts must partition the set")
	assert.Equal(t, len(records), bucketTotal(checkOut), "check-out counts must partition the set")

	// NaN from the malformed string lands in the overflow bucket, not lost.
	assert.Equal(t, 2, findBucket(t, checkIn, "After 12:30 PM (Late)"))
}

func TestDistributions_StableBucketOrder(t *testing.T) {
	dist := CheckInDistribution(nil)

	names := make([]string, 0, len(dist))
	for _, b := range dist {
		names = append(names, b.Bucket)
		assert.Zero(t, b.Count)
	}
	require.Equal(t, []string{
		"Before 8 AM",
		"8:00–8:59 AM",
		"9:00–9:29 AM",
		"9:30–10:29 AM (Late)",
		"10:30–11:29 AM (Late)",
		"11:30 AM–12:29 PM (Late)",
		"After 12:30 PM (Late)",
		"Missing Check-In",
	}, names)
}

func TestAttendanceDistribution(t *testing.T) {
	records := []record.AttendanceRecord{
		dayRec("2024-01-08", record.StatusPresent, "09:00:00", "17:00:00"),
		dayRec("2024-01-09", record.StatusPresent, "10:00:00", "17:00:00"),
		dayRec("2024-01-10", record.StatusAbsent, "", ""),
	}

	dist := AttendanceDistribution(records)

	assert.Equal(t, 1, findBucket(t, dist, "On Time"))
	assert.Equal(t, 1, findBucket(t, dist, "Late"))
	assert.Equal(t, 1, findBucket(t, dist, "Absent"))
	assert.Equal(t, len(records), bucketTotal(dist))
}
