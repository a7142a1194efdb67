package record

import (
	"errors"
	"testing"

	"github.com/attendlyhq/attendly-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validRow() ImportRow {
	return ImportRow{
		EmployeeID:    "EMP-001",
		EmployeeName:  "Jordan Lee",
		Date:          "2024-01-08",
		CheckIn:       "09:15:00",
		CheckOut:      "17:30:00",
		ReportedHours: "7.5",
		Status:        StatusPresent,
	}
}

func TestRecordFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  RecordFilter
		wantErr bool
	}{
		{"empty filter", RecordFilter{}, false},
		{"employee only", RecordFilter{EmployeeID: strPtr("EMP-001")}, false},
		{"valid range", RecordFilter{FromDate: strPtr("2024-01-01"), ToDate: strPtr("2024-01-31")}, false},
		{"same day range", RecordFilter{FromDate: strPtr("2024-01-01"), ToDate: strPtr("2024-01-01")}, false},
		{"malformed from", RecordFilter{FromDate: strPtr("01/01/2024")}, true},
		{"malformed to", RecordFilter{ToDate: strPtr("2024-13-40")}, true},
		{"inverted range", RecordFilter{FromDate: strPtr("2024-02-01"), ToDate: strPtr("2024-01-01")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestImportRequest_Validate_EmptyBatch(t *testing.T) {
	req := ImportRequest{}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "records")
}

func TestImportRequest_Validate_RowFields(t *testing.T) {
	missingID := validRow()
	missingID.EmployeeID = " "

	badDate := validRow()
	badDate.Date = "Jan 8 2024"

	badStatus := validRow()
	badStatus.Status = "HOLIDAY"

	req := ImportRequest{Rows: []ImportRow{validRow(), missingID, badDate, badStatus}}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	details := errs.ToMap()
	assert.Contains(t, details, "records[1].employee_id")
	assert.Contains(t, details, "records[2].date")
	assert.Contains(t, details, "records[3].status")
	assert.NotContains(t, details, "records[0].employee_id")
}

func TestImportRequest_Validate_SentinelClockValuesAllowed(t *testing.T) {
	row := validRow()
	row.CheckIn = "N/A"
	row.CheckOut = ""
	row.ReportedHours = "N/A"
	row.Status = StatusAbsent

	req := ImportRequest{Rows: []ImportRow{row}}
	assert.NoError(t, req.Validate())
}

func TestAttendanceRecord_ReportedWorkingHours(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"7.5", 7.5, true},
		{"0", 0, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"seven", 0, false},
	}

	for _, tt := range tests {
		rec := AttendanceRecord{ReportedHours: tt.raw}
		got, ok := rec.ReportedWorkingHours()
		assert.Equal(t, tt.wantOK, ok, "raw=%q", tt.raw)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		}
	}
}

func TestAttendanceRecord_Day(t *testing.T) {
	rec := AttendanceRecord{Date: "2024-01-08"}
	d, ok := rec.Day()
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	rec.Date = "not-a-date"
	_, ok = rec.Day()
	assert.False(t, ok)
}
