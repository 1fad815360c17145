package analysis

import (
	"testing"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateDay_LateArrival(t *testing.T) {
	// In 08:10 on a regular schedule starting 08:00: 10 minutes late,
	// which clears the 5-minute tier but not the 35-minute one.
	day := []punch.Record{
		rec(t, "Ana", "2025-03-10 08:10:00", punch.KindIn, punch.OpIn),
	}

	m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())

	assert.Equal(t, 10, m.LateMinutes)
	assert.Equal(t, 0.5, m.LateHours)
	assert.Equal(t, 0.0, m.OvertimeHours)
}

func TestEvaluateDay_LatenessThresholdBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		inTime    string
		wantMins  int
		wantHours float64
	}{
		{"exactly at half-hour threshold", "2025-03-10 08:05:00", 5, 0},
		{"one past half-hour threshold", "2025-03-10 08:06:00", 6, 0.5},
		{"exactly at full-hour threshold", "2025-03-10 08:35:00", 35, 0.5},
		{"one past full-hour threshold", "2025-03-10 08:36:00", 36, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			day := []punch.Record{
				rec(t, "Ana", tc.inTime, punch.KindIn, punch.OpIn),
			}
			m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())
			assert.Equal(t, tc.wantMins, m.LateMinutes)
			assert.Equal(t, tc.wantHours, m.LateHours)
		})
	}
}

func TestEvaluateDay_EarlyArrivalCredit(t *testing.T) {
	// In 06:58 (before the 07:05 cutoff), out at scheduled end with more
	// than 8 hours worked: the full early-arrival credit is granted.
	day := []punch.Record{
		rec(t, "Ana", "2025-03-10 06:58:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 17:00:00", punch.KindOut, punch.OpOut),
	}

	m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())

	assert.Equal(t, 1.0, m.OvertimeHours)
	assert.Equal(t, 0, m.LateMinutes)
}

func TestEvaluateDay_EarlyArrivalHalfCredit(t *testing.T) {
	day := []punch.Record{
		rec(t, "Ana", "2025-03-10 07:20:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 17:00:00", punch.KindOut, punch.OpOut),
	}

	m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())

	assert.Equal(t, 0.5, m.OvertimeHours)
}

func TestEvaluateDay_EarlyArrivalCreditGatedOnWorkedHours(t *testing.T) {
	// Early arrival but a short day: under 480 worked minutes the pending
	// credit is discarded.
	day := []punch.Record{
		rec(t, "Ana", "2025-03-10 06:58:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 13:00:00", punch.KindOut, punch.OpOut),
	}

	m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())

	assert.Equal(t, 0.0, m.OvertimeHours)
}

func TestEvaluateDay_EarlyScheduleGetsNoEarlyArrivalCredit(t *testing.T) {
	// 06:30 is before the early schedule's own 07:00 start, and well under
	// the 07:05 cutoff, but the credit only exists for the regular schedule.
	day := []punch.Record{
		rec(t, "Ana", "2025-03-10 06:30:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 15:30:00", punch.KindOut, punch.OpOut),
	}

	m := EvaluateDay(day, analysis.ScheduleEarly, testSettings())

	assert.Equal(t, 0.0, m.OvertimeHours)
}

func TestEvaluateDay_EveningOvertimeTiers(t *testing.T) {
	cases := []struct {
		name    string
		outTime string
		want    float64
	}{
		{"before half-hour threshold", "2025-03-10 17:29:00", 0},
		{"at half-hour threshold", "2025-03-10 17:30:00", 0.5},
		{"at full-hour threshold", "2025-03-10 18:00:00", 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			day := []punch.Record{
				rec(t, "Ana", "2025-03-10 08:00:00", punch.KindIn, punch.OpIn),
				rec(t, "Ana", tc.outTime, punch.KindOut, punch.OpOut),
			}
			m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())
			assert.Equal(t, tc.want, m.OvertimeHours)
		})
	}
}

func TestEvaluateDay_OvertimeGateBlocksShortDay(t *testing.T) {
	// Departure past end+full threshold, but a 75-minute lunch pushes the
	// worked total under 480 minutes: no overtime at all.
	day := []punch.Record{
		rec(t, "Ana", "2025-03-10 09:45:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 12:00:00", punch.KindBreak, punch.OpOut),
		rec(t, "Ana", "2025-03-10 13:15:00", punch.KindBreak, punch.OpIn),
		rec(t, "Ana", "2025-03-10 18:01:00", punch.KindOut, punch.OpOut),
	}

	m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())

	assert.Equal(t, 0.0, m.OvertimeHours)
}

func TestEvaluateDay_LunchOverrun(t *testing.T) {
	// A 75-minute break against a 60-minute lunch: the 15-minute excess
	// counts as lateness and earns the half-hour tier credit.
	day := []punch.Record{
		rec(t, "Ana", "2025-03-10 08:00:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 12:00:00", punch.KindBreak, punch.OpOut),
		rec(t, "Ana", "2025-03-10 13:15:00", punch.KindBreak, punch.OpIn),
		rec(t, "Ana", "2025-03-10 17:00:00", punch.KindOut, punch.OpOut),
	}

	m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())

	assert.Equal(t, 15, m.LateMinutes)
	assert.Equal(t, 0.5, m.LateHours)
}

func TestEvaluateDay_MissingBreakPairSkipsLunchCheck(t *testing.T) {
	// Break-out with no break-in: lunch evaluation is silently skipped.
	day := []punch.Record{
		rec(t, "Ana", "2025-03-10 08:00:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 12:00:00", punch.KindBreak, punch.OpOut),
		rec(t, "Ana", "2025-03-10 17:00:00", punch.KindOut, punch.OpOut),
	}

	m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())

	assert.Equal(t, 0, m.LateMinutes)
	assert.Equal(t, 0.0, m.LateHours)
}

func TestEvaluateDay_SaturdayShortCircuit(t *testing.T) {
	// 2025-03-08 is a Saturday: no lateness, no overtime, no lunch penalty,
	// regardless of the punch times.
	day := []punch.Record{
		rec(t, "Ana", "2025-03-08 09:30:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-08 12:00:00", punch.KindBreak, punch.OpOut),
		rec(t, "Ana", "2025-03-08 13:30:00", punch.KindBreak, punch.OpIn),
		rec(t, "Ana", "2025-03-08 18:30:00", punch.KindOut, punch.OpOut),
	}

	m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())

	assert.Equal(t, analysis.DayMetrics{}, m)
}

func TestEvaluateDay_SinglePunchDay(t *testing.T) {
	// First punch equals last punch: zero worked minutes, gate closed,
	// nothing but the arrival check applies.
	day := []punch.Record{
		rec(t, "Ana", "2025-03-10 06:58:00", punch.KindIn, punch.OpIn),
	}

	m := EvaluateDay(day, analysis.ScheduleRegular, testSettings())

	assert.Equal(t, analysis.DayMetrics{}, m)
}

func TestEvaluateDay_EmptyDay(t *testing.T) {
	assert.Equal(t, analysis.DayMetrics{}, EvaluateDay(nil, analysis.ScheduleRegular, testSettings()))
}
