package record

import (
	"io"
	"mime/multipart"

	"github.com/attendlyhq/attendly-backend-go/internal/pkg/validator"
)

type RecordFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	FromDate   *string `json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate     *string `json:"to_date,omitempty"`   // YYYY-MM-DD
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.FromDate != nil && *f.FromDate != "" {
		if _, valid := validator.IsValidDate(*f.FromDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}

	if f.ToDate != nil && *f.ToDate != "" {
		if _, valid := validator.IsValidDate(*f.ToDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}

	if f.FromDate != nil && f.ToDate != nil && *f.FromDate != "" && *f.ToDate != "" {
		from, fromOK := validator.IsValidDate(*f.FromDate)
		to, toOK := validator.IsValidDate(*f.ToDate)
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

// ImportRow is one parsed employee-day inside an import batch. The upload
// pipeline has already decoded the proprietary device export; clock values
// arrive as raw strings with "" or "N/A" meaning not recorded.
type ImportRow struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Date          string `json:"date"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	ReportedHours string `json:"reported_hours"`
	Status        string `json:"status"`
	LateMinutes   int    `json:"late_minutes"`
	LateFlag      bool   `json:"late_flag"`
}

type ImportRequest struct {
	Rows []ImportRow `json:"records"`

	// Original export file, archived alongside the parsed rows.
	File       io.Reader             `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "at least one record is required",
		})
	}

	for i, row := range r.Rows {
		if validator.IsEmpty(row.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "records[" + validator.Itoa(i) + "].employee_id",
				Message: "employee_id is required",
			})
		}
		if _, valid := validator.IsValidDate(row.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "records[" + validator.Itoa(i) + "].date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
		if !validator.IsInSlice(row.Status, []string{StatusPresent, StatusAbsent}) {
			errs = append(errs, validator.ValidationError{
				Field:   "records[" + validator.Itoa(i) + "].status",
				Message: "status must be PRESENT or ABSENT",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportResponse struct {
	Imported   int    `json:"imported"`
	SourceFile string `json:"source_file,omitempty"`
}

type RecordResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Date          string `json:"date"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	ReportedHours string `json:"reported_hours"`
	Status        string `json:"status"`
	LateMinutes   int    `json:"late_minutes"`
	LateFlag      bool   `json:"late_flag"`
}

type ListRecordsResponse struct {
	TotalCount int              `json:"total_count"`
	Records    []RecordResponse `json:"records"`
}
