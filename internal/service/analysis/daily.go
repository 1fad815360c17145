package analysis

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/timeutil"
)

const (
	// Early-arrival cutoffs for the regular schedule, minute-of-day.
	earlyArrivalFullCutoff = 7*60 + 5  // 07:05 earns 1.0
	earlyArrivalHalfCutoff = 7*60 + 30 // 07:30 earns 0.5

	// Minimum worked minutes before any evening or early-arrival overtime
	// is credited.
	overtimeGateMinutes = 480
)

// EvaluateDay computes lateness and overtime for one employee-day. The
// punches must already be duplicate-filtered and sorted ascending.
//
// Saturdays return zero immediately: Saturday hours are credited by the
// period aggregator, and neither lateness nor lunch-overrun applies there.
func EvaluateDay(day []punch.Record, kind analysis.ScheduleKind, s analysis.Settings) analysis.DayMetrics {
	var m analysis.DayMetrics
	if len(day) == 0 {
		return m
	}

	first := day[0]
	last := day[len(day)-1]
	if timeutil.IsSaturday(first.Timestamp) {
		return m
	}

	// A single-punch day yields zero worked minutes, which closes the
	// overtime gate below on its own.
	workedMinutes := int(last.Timestamp.Sub(first.Timestamp).Minutes())
	breakStart, breakEnd, hasBreak := breakPair(day)
	breakMinutes := 0
	if hasBreak {
		breakMinutes = int(breakEnd.Sub(breakStart).Minutes())
		workedMinutes -= breakMinutes
	}

	sched := s.ScheduleFor(kind)
	arrival := timeutil.MinutesSinceMidnight(first.Timestamp)

	// Early arrival earns a provisional overtime credit on the regular
	// schedule only; it is applied when the 8-hour gate passes. The early
	// schedule never earns it.
	var pendingOvertime float64
	if kind == analysis.ScheduleRegular && arrival < sched.StartMinute {
		switch {
		case arrival <= earlyArrivalFullCutoff:
			pendingOvertime = 1.0
		case arrival <= earlyArrivalHalfCutoff:
			pendingOvertime = 0.5
		}
	}

	if arrival > sched.StartMinute {
		lateMinutes := arrival - sched.StartMinute
		m.LateMinutes += lateMinutes
		m.LateHours += tierCredit(lateMinutes, s.LateThresholds)
	}

	if workedMinutes >= overtimeGateMinutes {
		m.OvertimeHours += pendingOvertime

		departure := timeutil.MinutesSinceMidnight(last.Timestamp)
		switch {
		case departure >= sched.EndMinute+s.OvertimeThresholds.FullHour:
			m.OvertimeHours += 1.0
		case departure >= sched.EndMinute+s.OvertimeThresholds.HalfHour:
			m.OvertimeHours += 0.5
		}
	}

	// Lunch overrun counts as lateness, with the same tiering as a late
	// arrival. Missing either half of the break pair skips the check.
	if hasBreak {
		if excess := breakMinutes - s.LunchDurationMinutes; excess > 0 {
			m.LateMinutes += excess
			m.LateHours += tierCredit(excess, s.LateThresholds)
		}
	}

	return m
}

// tierCredit converts a raw minute delta to the tiered 0 / 0.5 / 1.0 credit.
// Bounds are strict: a delta exactly equal to HalfHour earns nothing, and a
// delta exactly equal to FullHour earns the half credit.
func tierCredit(minutes int, t analysis.Thresholds) float64 {
	switch {
	case minutes > t.FullHour:
		return 1.0
	case minutes > t.HalfHour:
		return 0.5
	default:
		return 0
	}
}

// breakPair finds the first break-start punch and the first break-end punch
// after it. Either half missing means no lunch evaluation for the day.
func breakPair(day []punch.Record) (start, end time.Time, ok bool) {
	for i, rec := range day {
		if rec.Kind == punch.KindBreak && rec.Op == punch.OpOut {
			for _, later := range day[i+1:] {
				if later.Kind == punch.KindBreak && later.Op == punch.OpIn {
					return rec.Timestamp, later.Timestamp, true
				}
			}
			return time.Time{}, time.Time{}, false
		}
	}
	return time.Time{}, time.Time{}, false
}
