package record

import "context"

// RecordRepository defines data access for attendance records.
type RecordRepository interface {
	// List retrieves records matching the filter, ascending by date.
	List(ctx context.Context, filter RecordFilter) ([]AttendanceRecord, error)

	// GetByID retrieves a single record. Returns ErrRecordNotFound when no
	// row matches.
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// UpsertBatch inserts a parsed export batch, replacing any existing row
	// for the same (employee_id, date). Returns the number of rows written.
	UpsertBatch(ctx context.Context, records []AttendanceRecord) (int, error)
}
