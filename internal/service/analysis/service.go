package analysis

import (
	"context"
	"fmt"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
)

type AnalysisServiceImpl struct {
	punchRepo punch.Repository
	defaults  analysis.Settings
}

func NewAnalysisService(punchRepo punch.Repository, defaults analysis.Settings) analysis.Service {
	return &AnalysisServiceImpl{
		punchRepo: punchRepo,
		defaults:  defaults,
	}
}

// AnalyzePeriod implements analysis.Service.
func (a *AnalysisServiceImpl) AnalyzePeriod(ctx context.Context, req analysis.AnalyzeRequest) ([]analysis.ResultResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	settings := a.defaults
	if req.Settings != nil {
		settings = *req.Settings
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	start, end := req.Range()

	var records []punch.Record
	if len(req.Punches) > 0 {
		var err error
		records, err = toRecords(req.Punches)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		records, err = a.punchRepo.ListByRange(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to load stored punches: %w", err)
		}
	}

	if len(records) == 0 {
		return nil, analysis.ErrNoPunches
	}

	results := AnalyzePeriod(records, start, end, settings)

	responses := make([]analysis.ResultResponse, 0, len(results))
	for _, res := range results {
		responses = append(responses, analysis.ToResponse(res))
	}
	return responses, nil
}

// EvaluateDay implements analysis.Service. The drill-down path re-applies
// the duplicate filter before evaluating; the filter is idempotent, so
// already-filtered input passes through unchanged.
func (a *AnalysisServiceImpl) EvaluateDay(ctx context.Context, req analysis.EvaluateDayRequest) (analysis.DayMetrics, error) {
	if err := req.Validate(); err != nil {
		return analysis.DayMetrics{}, err
	}

	settings := a.defaults
	if req.Settings != nil {
		settings = *req.Settings
	}
	if err := settings.Validate(); err != nil {
		return analysis.DayMetrics{}, err
	}

	records, err := toRecords(req.Punches)
	if err != nil {
		return analysis.DayMetrics{}, err
	}

	filtered := Filter(records, settings.DuplicateWindowMinutes)
	return EvaluateDay(filtered, req.Schedule, settings), nil
}

// toRecords parses wire punches, aborting on the first malformed row.
func toRecords(dtos []punch.RecordDTO) ([]punch.Record, error) {
	records := make([]punch.Record, 0, len(dtos))
	for i, dto := range dtos {
		rec, err := dto.ToRecord()
		if err != nil {
			return nil, fmt.Errorf("punch row %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
