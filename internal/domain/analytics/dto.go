package analytics

import (
	"time"

	"github.com/attendlyhq/attendly-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive [From, To] pair of calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange parses two YYYY-MM-DD bounds.
func NewDateRange(from, to string) (DateRange, error) {
	f, err := time.Parse(dateLayout, from)
	if err != nil {
		return DateRange{}, err
	}
	t, err := time.Parse(dateLayout, to)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{From: f, To: t}, nil
}

// Days is the inclusive day count of the range.
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// DayEntry is a calendar day with its weekday name, as listed in the
// absent/extra-working tables.
type DayEntry struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// BucketCount is one named histogram bucket.
type BucketCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// Summary is the derived statistics object consumed by the presentation layer.
type Summary struct {
	TotalAttendance        int           `json:"total_attendance"`
	TotalDays              int           `json:"total_days"`
	AbsentDates            []DayEntry    `json:"absent_dates"`
	ExtraWorkingDates      []DayEntry    `json:"extra_working_dates"`
	AverageWorkingHours    float64       `json:"average_working_hours"`
	AttendanceDistribution []BucketCount `json:"attendance_distribution"`
	CheckInDistribution    []BucketCount `json:"check_in_distribution"`
	CheckOutDistribution   []BucketCount `json:"check_out_distribution"`
}

// DayMetrics annotates a single table row.
type DayMetrics struct {
	WorkingHours float64 `json:"working_hours"`
	IsLate       bool    `json:"is_late"`
}

type SummaryRequest struct {
	EmployeeID string `json:"employee_id,omitempty"`
	FromDate   string `json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate     string `json:"to_date,omitempty"`   // YYYY-MM-DD
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FromDate != "" {
		if _, valid := validator.IsValidDate(r.FromDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}

	if r.ToDate != "" {
		if _, valid := validator.IsValidDate(r.ToDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}

	if r.FromDate != "" && r.ToDate != "" {
		from, fromOK := validator.IsValidDate(r.FromDate)
		to, toOK := validator.IsValidDate(r.ToDate)
		if fromOK && toOK && from.After(to) {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must not be before from",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordRow is a table row: the raw record plus its derived metrics.
type RecordRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Status       string  `json:"status"`
	LateMinutes  int     `json:"late_minutes"`
	WorkingHours float64 `json:"working_hours"`
	IsLate       bool    `json:"is_late"`
}

// TrendPoint is one day on the uncapped working-hours trend chart.
type TrendPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type SummaryResponse struct {
	EmployeeID   string       `json:"employee_id,omitempty"`
	EmployeeName string       `json:"employee_name,omitempty"`
	FromDate     string       `json:"from_date,omitempty"`
	ToDate       string       `json:"to_date,omitempty"`
	GeneratedAt  string       `json:"generated_at"`
	Summary      Summary      `json:"summary"`
	Rows         []RecordRow  `json:"rows"`
	Trend        []TrendPoint `json:"working_hours_trend"`
}
