package analytics

import (
	"math"
	"testing"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/record"
	"github.com/stretchr/testify/assert"
)

func rec(checkIn, checkOut, reported string) record.AttendanceRecord {
	return record.AttendanceRecord{
		EmployeeID:    "EMP-001",
		Date:          "2024-01-08",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		ReportedHours: reported,
		Status:        record.StatusPresent,
	}
}

func TestWorkingHours_BothMissing(t *testing.T) {
	assert.Equal(t, 0.0, WorkingHours(rec("", "", "N/A"), true))
	assert.Equal(t, 0.0, WorkingHours(rec("N/A", "", ""), false))
}

func TestWorkingHours_CheckOutOnly(t *testing.T) {
	// Missing check-in assumes an on-time 09:30 start.
	assert.InDelta(t, 8.0, WorkingHours(rec("", "17:30:00", "N/A"), false), 1e-9)

	// A check-out before the assumed start goes negative uncapped.
	assert.InDelta(t, -1.5, WorkingHours(rec("N/A", "08:00:00", "N/A"), false), 1e-9)
	assert.Equal(t, 0.0, WorkingHours(rec("N/A", "08:00:00", "N/A"), true))
}

func TestWorkingHours_CheckInOnly(t *testing.T) {
	// Missing check-out assumes the shift ran to 17:00.
	assert.InDelta(t, 7.5, WorkingHours(rec("09:30:00", "", "N/A"), false), 1e-9)
	assert.InDelta(t, 7.0, WorkingHours(rec("10:00:00", "N/A", ""), true), 1e-9)

	// Check-in after shift end is negative uncapped, floored capped.
	assert.InDelta(t, -1.0, WorkingHours(rec("18:00:00", "", ""), false), 1e-9)
	assert.Equal(t, 0.0, WorkingHours(rec("18:00:00", "", ""), true))
}

func TestWorkingHours_BothPresent(t *testing.T) {
	// Raw 8.25h clock difference caps to the 7.5h policy maximum.
	assert.InDelta(t, 7.5, WorkingHours(rec("09:15:00", "17:30:00", "N/A"), true), 1e-9)
	assert.InDelta(t, 8.25, WorkingHours(rec("09:15:00", "17:30:00", "N/A"), false), 1e-9)
}

func TestWorkingHours_ReportedValuePreferred(t *testing.T) {
	// A numeric device duration wins over the clock difference.
	assert.InDelta(t, 6.5, WorkingHours(rec("10:00:00", "18:00:00", "6.5"), true), 1e-9)
	assert.InDelta(t, 6.5, WorkingHours(rec("10:00:00", "18:00:00", "6.5"), false), 1e-9)

	// Non-numeric reported value falls back to the clock difference.
	assert.InDelta(t, 8.0, WorkingHours(rec("10:00:00", "18:00:00", "garbage"), false), 1e-9)
}

func TestWorkingHours_CappedRange(t *testing.T) {
	recs := []record.AttendanceRecord{
		rec("09:15:00", "17:30:00", "N/A"),
		rec("", "23:00:00", ""),
		rec("02:00:00", "", ""),
		rec("10:00:00", "18:00:00", "12.0"),
		rec("22:00:00", "06:00:00", "N/A"), // negative raw difference
	}
	for _, r := range recs {
		h := WorkingHours(r, true)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.LessOrEqual(t, h, PolicyMaxHours)
	}
}

func TestWorkingHours_MalformedPropagatesNaN(t *testing.T) {
	h := WorkingHours(rec("9:xx:00", "17:00:00", "N/A"), true)
	assert.True(t, math.IsNaN(h), "garbage clock strings must stay unusable, got %v", h)
}
