package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/record"
	"github.com/attendlyhq/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordRepository {
	return &recordRepository{db: db}
}

// List implements record.RecordRepository.
func (r *recordRepository) List(ctx context.Context, filter record.RecordFilter) ([]record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_name, date, check_in, check_out,
			   reported_hours, status, late_minutes, late_flag, created_at
		FROM attendance_records
	`

	var conditions []string
	var args []interface{}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.FromDate != nil && *filter.FromDate != "" {
		args = append(args, *filter.FromDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.ToDate != nil && *filter.ToDate != "" {
		args = append(args, *filter.ToDate)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC, employee_id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]record.AttendanceRecord, 0)
	for rows.Next() {
		var rec record.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Date,
			&rec.CheckIn, &rec.CheckOut, &rec.ReportedHours, &rec.Status,
			&rec.LateMinutes, &rec.LateFlag, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}

// GetByID implements record.RecordRepository.
func (r *recordRepository) GetByID(ctx context.Context, id string) (record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_name, date, check_in, check_out,
			   reported_hours, status, late_minutes, late_flag, created_at
		FROM attendance_records
		WHERE id = $1
	`

	var rec record.AttendanceRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Date,
		&rec.CheckIn, &rec.CheckOut, &rec.ReportedHours, &rec.Status,
		&rec.LateMinutes, &rec.LateFlag, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record.AttendanceRecord{}, record.ErrRecordNotFound
		}
		return record.AttendanceRecord{}, fmt.Errorf("failed to get attendance record by id: %w", err)
	}

	return rec, nil
}

// UpsertBatch implements record.RecordRepository. The export pipeline may
// re-send a day, so the (employee_id, date) key replaces in place.
func (r *recordRepository) UpsertBatch(ctx context.Context, records []record.AttendanceRecord) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, employee_name, date, check_in, check_out,
			reported_hours, status, late_minutes, late_flag
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			employee_name  = EXCLUDED.employee_name,
			check_in       = EXCLUDED.check_in,
			check_out      = EXCLUDED.check_out,
			reported_hours = EXCLUDED.reported_hours,
			status         = EXCLUDED.status,
			late_minutes   = EXCLUDED.late_minutes,
			late_flag      = EXCLUDED.late_flag
	`

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query,
			rec.ID, rec.EmployeeID, rec.EmployeeName, rec.Date,
			rec.CheckIn, rec.CheckOut, rec.ReportedHours, rec.Status,
			rec.LateMinutes, rec.LateFlag,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	written := 0
	for range records {
		if _, err := results.Exec(); err != nil {
			return written, fmt.Errorf("failed to upsert attendance record: %w", err)
		}
		written++
	}

	return written, nil
}
