package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/analytics"
	"github.com/attendlyhq/attendly-backend-go/internal/domain/employee"
	"github.com/attendlyhq/attendly-backend-go/internal/domain/record"
	"golang.org/x/sync/errgroup"
)

type AnalyticsServiceImpl struct {
	record.RecordRepository
	employee.EmployeeRepository
}

func NewAnalyticsService(recordRepository record.RecordRepository, employeeRepository employee.EmployeeRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		RecordRepository:   recordRepository,
		EmployeeRepository: employeeRepository,
	}
}

// GetSummary implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetSummary(ctx context.Context, req analytics.SummaryRequest) (analytics.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return analytics.SummaryResponse{}, err
	}

	filter := record.RecordFilter{}
	if req.EmployeeID != "" {
		filter.EmployeeID = &req.EmployeeID
	}
	if req.FromDate != "" {
		filter.FromDate = &req.FromDate
	}
	if req.ToDate != "" {
		filter.ToDate = &req.ToDate
	}

	var (
		records []record.AttendanceRecord
		emp     employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.RecordRepository.List(gCtx, filter)
		if err != nil {
			return fmt.Errorf("failed to fetch records: %w", err)
		}
		return nil
	})
	if req.EmployeeID != "" {
		g.Go(func() error {
			var err error
			emp, err = s.EmployeeRepository.GetByID(gCtx, req.EmployeeID)
			if err != nil {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return analytics.SummaryResponse{}, err
	}

	// Absence detection needs a closed range; without both bounds the
	// summary degrades to the record set itself.
	var rng *analytics.DateRange
	if req.FromDate != "" && req.ToDate != "" {
		r, err := analytics.NewDateRange(req.FromDate, req.ToDate)
		if err != nil {
			return analytics.SummaryResponse{}, fmt.Errorf("failed to parse date range: %w", err)
		}
		rng = &r
	}

	summary := analytics.Summarize(records, rng)

	rows := make([]analytics.RecordRow, 0, len(records))
	trend := make([]analytics.TrendPoint, 0, len(records))
	for _, rec := range records {
		m := analytics.Metrics(rec)
		rows = append(rows, analytics.RecordRow{
			EmployeeID:   rec.EmployeeID,
			EmployeeName: rec.EmployeeName,
			Date:         rec.Date,
			CheckIn:      rec.CheckIn,
			CheckOut:     rec.CheckOut,
			Status:       rec.Status,
			LateMinutes:  rec.LateMinutes,
			WorkingHours: sanitizeHours(m.WorkingHours),
			IsLate:       m.IsLate,
		})
		trend = append(trend, analytics.TrendPoint{
			Date:  rec.Date,
			Hours: sanitizeHours(analytics.WorkingHours(rec, false)),
		})
	}

	return analytics.SummaryResponse{
		EmployeeID:   req.EmployeeID,
		EmployeeName: emp.Name,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Summary:      summary,
		Rows:         rows,
		Trend:        trend,
	}, nil
}

// sanitizeHours replaces NaN from malformed clock strings with zero so the
// response stays JSON-encodable.
func sanitizeHours(h float64) float64 {
	if math.IsNaN(h) {
		return 0
	}
	return h
}
