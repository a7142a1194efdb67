package analytics

import "context"

// AnalyticsService produces the derived statistics consumed by the
// presentation layer.
type AnalyticsService interface {
	// GetSummary runs the derivation engine over the records matching the
	// request and returns the summary, annotated rows, and trend series.
	GetSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
