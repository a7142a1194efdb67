package record

import "context"

// RecordService defines business logic for the raw record store.
type RecordService interface {
	// ListRecords retrieves records for an employee/date filter.
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	// GetRecord retrieves a single record by its ID.
	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// Import writes a parsed export batch and archives the source file.
	Import(ctx context.Context, req ImportRequest) (ImportResponse, error)
}
