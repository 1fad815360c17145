package analysis

import (
	"context"
)

// Service defines the attendance analysis operations consumed by the UI
// layer. Both operations are pure recomputations: identical input and
// settings always produce identical output.
type Service interface {
	// AnalyzePeriod runs the full pipeline (duplicate filter, schedule
	// classification, daily evaluation, absence reconciliation) for every
	// employee in the punch set and date range.
	AnalyzePeriod(ctx context.Context, req AnalyzeRequest) ([]ResultResponse, error)

	// EvaluateDay computes lateness and overtime for a single employee-day
	// without touching the rest of the period.
	EvaluateDay(ctx context.Context, req EvaluateDayRequest) (DayMetrics, error)
}
