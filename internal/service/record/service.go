package record

import (
	"context"
	"fmt"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/record"
	"github.com/attendlyhq/attendly-backend-go/internal/pkg/database"
	"github.com/attendlyhq/attendly-backend-go/internal/repository/postgresql"
	"github.com/attendlyhq/attendly-backend-go/internal/service/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RecordServiceImpl struct {
	db *database.DB
	record.RecordRepository
	fileService file.FileService
}

func NewRecordService(db *database.DB, recordRepository record.RecordRepository, fileService file.FileService) record.RecordService {
	return &RecordServiceImpl{
		db:               db,
		RecordRepository: recordRepository,
		fileService:      fileService,
	}
}

func toRecordResponse(rec record.AttendanceRecord) record.RecordResponse {
	return record.RecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		Date:          rec.Date,
		CheckIn:       rec.CheckIn,
		CheckOut:      rec.CheckOut,
		ReportedHours: rec.ReportedHours,
		Status:        rec.Status,
		LateMinutes:   rec.LateMinutes,
		LateFlag:      rec.LateFlag,
	}
}

// ListRecords implements record.RecordService.
func (s *RecordServiceImpl) ListRecords(ctx context.Context, filter record.RecordFilter) (record.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return record.ListRecordsResponse{}, err
	}

	records, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return record.ListRecordsResponse{}, fmt.Errorf("failed to list records: %w", err)
	}

	responses := make([]record.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}

	return record.ListRecordsResponse{
		TotalCount: len(responses),
		Records:    responses,
	}, nil
}

// GetRecord implements record.RecordService.
func (s *RecordServiceImpl) GetRecord(ctx context.Context, id string) (record.RecordResponse, error) {
	rec, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return record.RecordResponse{}, err
	}
	return toRecordResponse(rec), nil
}

// Import implements record.RecordService.
func (s *RecordServiceImpl) Import(ctx context.Context, req record.ImportRequest) (record.ImportResponse, error) {
	if len(req.Rows) == 0 {
		return record.ImportResponse{}, record.ErrEmptyImport
	}
	if err := req.Validate(); err != nil {
		return record.ImportResponse{}, err
	}

	sourceFile := ""
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.ArchiveExport(ctx, req.File, req.FileHeader.Filename)
		if err != nil {
			return record.ImportResponse{}, fmt.Errorf("failed to archive export file: %w", err)
		}
		sourceFile = path
	}

	records := make([]record.AttendanceRecord, 0, len(req.Rows))
	for _, row := range req.Rows {
		records = append(records, record.AttendanceRecord{
			ID:            uuid.New().String(),
			EmployeeID:    row.EmployeeID,
			EmployeeName:  row.EmployeeName,
			Date:          row.Date,
			CheckIn:       row.CheckIn,
			CheckOut:      row.CheckOut,
			ReportedHours: row.ReportedHours,
			Status:        row.Status,
			LateMinutes:   row.LateMinutes,
			LateFlag:      row.LateFlag,
		})
	}

	var imported int
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		n, err := s.RecordRepository.UpsertBatch(txCtx, records)
		if err != nil {
			return fmt.Errorf("failed to import records: %w", err)
		}
		imported = n
		return nil
	})
	if err != nil {
		// The rolled-back batch leaves the archive without a backing import.
		if sourceFile != "" {
			_ = s.fileService.DeleteFile(ctx, sourceFile)
		}
		return record.ImportResponse{}, err
	}

	return record.ImportResponse{
		Imported:   imported,
		SourceFile: sourceFile,
	}, nil
}
