package analysis

import (
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
)

// ScheduleKind tags which of the two configured schedules an employee follows.
// Schedules are always compared by this tag, never by field values, so two
// schedules that happen to share identical times stay distinguishable.
type ScheduleKind string

const (
	ScheduleRegular ScheduleKind = "regular"
	ScheduleEarly   ScheduleKind = "early"
)

// Schedule holds the four minute-of-day offsets that define a working day.
type Schedule struct {
	StartMinute      int `json:"start_minute"`
	EndMinute        int `json:"end_minute"`
	LunchStartMinute int `json:"lunch_start_minute"`
	LunchEndMinute   int `json:"lunch_end_minute"`
}

// Thresholds holds the two cutoffs of a tiered credit rule. Lateness credits
// require strictly exceeding a cutoff, while overtime counts the boundary
// minute itself.
type Thresholds struct {
	HalfHour int `json:"half_hour"`
	FullHour int `json:"full_hour"`
}

// Settings is the full analysis configuration. It is an immutable value
// passed into every engine call; the engine keeps no ambient state.
type Settings struct {
	DuplicateWindowMinutes int        `json:"duplicate_window_minutes"`
	LunchDurationMinutes   int        `json:"lunch_duration_minutes"`
	Regular                Schedule   `json:"regular"`
	Early                  Schedule   `json:"early"`
	LateThresholds         Thresholds `json:"late_thresholds"`
	OvertimeThresholds     Thresholds `json:"overtime_thresholds"`
	ShowEmptyDays          bool       `json:"show_empty_days"`
}

// ScheduleFor returns the schedule the tag refers to. Any tag other than
// ScheduleEarly resolves to the regular schedule.
func (s Settings) ScheduleFor(kind ScheduleKind) Schedule {
	if kind == ScheduleEarly {
		return s.Early
	}
	return s.Regular
}

// DayMetrics is the outcome of evaluating one employee-day.
type DayMetrics struct {
	LateMinutes   int     `json:"late_minutes"`
	LateHours     float64 `json:"late_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// Result is one employee's aggregate over the analyzed period.
//
// Employee identity is the exact punch name string: two employees sharing a
// name are merged. The time-clock exports guarantee no stable ID column, so
// the name stays the grouping key by contract.
type Result struct {
	EmployeeName    string                    `json:"employee_name"`
	Schedule        ScheduleKind              `json:"schedule"`
	DaysWithRecords int                       `json:"days_with_records"`
	Absences        int                       `json:"absences"`
	LateDays        int                       `json:"late_days"`
	LateMinutes     int                       `json:"late_minutes"`
	LateHours       float64                   `json:"late_hours"`
	OvertimeHours   float64                   `json:"overtime_hours"`
	SaturdayHours   float64                   `json:"saturday_hours"`
	TotalHours      float64                   `json:"total_hours"`
	Days            map[string][]punch.Record `json:"-"`
}
