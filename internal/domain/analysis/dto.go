package analysis

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// ANALYSIS DTOs
// ========================================

// AnalyzeRequest asks for a full period analysis. Punches may be supplied
// inline; when the slice is empty the service loads the stored punch set for
// the range instead.
type AnalyzeRequest struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Punches   []punch.RecordDTO `json:"punches,omitempty"`
	Settings  *Settings         `json:"settings,omitempty"`
}

func (r *AnalyzeRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed [start, end] pair. Validate must have passed.
func (r *AnalyzeRequest) Range() (time.Time, time.Time) {
	start, _ := time.Parse(punch.DateLayout, r.StartDate)
	end, _ := time.Parse(punch.DateLayout, r.EndDate)
	return start, end
}

// EvaluateDayRequest asks for a single employee-day evaluation, used by the
// drill-down view so one day can be re-rendered without recomputing the
// whole period.
type EvaluateDayRequest struct {
	Schedule ScheduleKind      `json:"schedule"`
	Punches  []punch.RecordDTO `json:"punches"`
	Settings *Settings         `json:"settings,omitempty"`
}

func (r *EvaluateDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Punches) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "punches",
			Message: "at least one punch is required",
		})
	}
	if r.Schedule != ScheduleRegular && r.Schedule != ScheduleEarly {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule",
			Message: "schedule must be \"regular\" or \"early\"",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResultResponse is the wire shape of one employee's Result, with the daily
// punch map rendered through RecordDTO.
type ResultResponse struct {
	EmployeeName    string                       `json:"employee_name"`
	Schedule        string                       `json:"schedule"`
	DaysWithRecords int                          `json:"days_with_records"`
	Absences        int                          `json:"absences"`
	LateDays        int                          `json:"late_days"`
	LateMinutes     int                          `json:"late_minutes"`
	LateHours       float64                      `json:"late_hours"`
	OvertimeHours   float64                      `json:"overtime_hours"`
	SaturdayHours   float64                      `json:"saturday_hours"`
	TotalHours      float64                      `json:"total_hours"`
	Days            map[string][]punch.RecordDTO `json:"days"`
}

// ToResponse converts a Result for the UI layer.
func ToResponse(res Result) ResultResponse {
	days := make(map[string][]punch.RecordDTO, len(res.Days))
	for date, records := range res.Days {
		dtos := make([]punch.RecordDTO, 0, len(records))
		for _, rec := range records {
			dtos = append(dtos, punch.FromRecord(rec))
		}
		days[date] = dtos
	}
	return ResultResponse{
		EmployeeName:    res.EmployeeName,
		Schedule:        string(res.Schedule),
		DaysWithRecords: res.DaysWithRecords,
		Absences:        res.Absences,
		LateDays:        res.LateDays,
		LateMinutes:     res.LateMinutes,
		LateHours:       res.LateHours,
		OvertimeHours:   res.OvertimeHours,
		SaturdayHours:   res.SaturdayHours,
		TotalHours:      res.TotalHours,
		Days:            days,
	}
}

// Validate enforces the configuration invariant: every threshold and
// duration is a positive integer and schedule minutes are ordered sanely.
func (s Settings) Validate() error {
	var errs validator.ValidationErrors

	positive := map[string]int{
		"duplicate_window_minutes":      s.DuplicateWindowMinutes,
		"lunch_duration_minutes":        s.LunchDurationMinutes,
		"late_thresholds.half_hour":     s.LateThresholds.HalfHour,
		"late_thresholds.full_hour":     s.LateThresholds.FullHour,
		"overtime_thresholds.half_hour": s.OvertimeThresholds.HalfHour,
		"overtime_thresholds.full_hour": s.OvertimeThresholds.FullHour,
	}
	for field, v := range positive {
		if v <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be a positive integer",
			})
		}
	}

	for field, sched := range map[string]Schedule{"regular": s.Regular, "early": s.Early} {
		if sched.StartMinute < 0 || sched.EndMinute <= sched.StartMinute {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "schedule end must come after start",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
