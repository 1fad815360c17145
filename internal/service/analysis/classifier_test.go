package analysis

import (
	"testing"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
)

func testSettings() analysis.Settings {
	return analysis.Settings{
		DuplicateWindowMinutes: 5,
		LunchDurationMinutes:   60,
		Regular: analysis.Schedule{
			StartMinute:      8 * 60,
			EndMinute:        17 * 60,
			LunchStartMinute: 12 * 60,
			LunchEndMinute:   13 * 60,
		},
		Early: analysis.Schedule{
			StartMinute:      7 * 60,
			EndMinute:        16 * 60,
			LunchStartMinute: 11*60 + 30,
			LunchEndMinute:   12*60 + 30,
		},
		LateThresholds:     analysis.Thresholds{HalfHour: 5, FullHour: 35},
		OvertimeThresholds: analysis.Thresholds{HalfHour: 30, FullHour: 60},
	}
}

func TestClassify_EarlyEmployee(t *testing.T) {
	// Entries around 07:00 and exits around 16:00 on weekdays.
	records := []punch.Record{
		rec(t, "Ana", "2025-03-10 06:58:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 16:02:00", punch.KindOut, punch.OpOut),
		rec(t, "Ana", "2025-03-11 07:04:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-11 15:58:00", punch.KindOut, punch.OpOut),
	}

	assert.Equal(t, analysis.ScheduleEarly, Classify(records, testSettings()))
}

func TestClassify_RegularEmployee(t *testing.T) {
	records := []punch.Record{
		rec(t, "Beto", "2025-03-10 08:03:00", punch.KindIn, punch.OpIn),
		rec(t, "Beto", "2025-03-10 17:05:00", punch.KindOut, punch.OpOut),
		rec(t, "Beto", "2025-03-11 07:57:00", punch.KindIn, punch.OpIn),
		rec(t, "Beto", "2025-03-11 17:01:00", punch.KindOut, punch.OpOut),
	}

	assert.Equal(t, analysis.ScheduleRegular, Classify(records, testSettings()))
}

func TestClassify_BothMeansMustBeCloserToEarly(t *testing.T) {
	// Early entries but regular exits: the AND-predicate fails, so the
	// employee stays on the regular schedule.
	records := []punch.Record{
		rec(t, "Caio", "2025-03-10 07:00:00", punch.KindIn, punch.OpIn),
		rec(t, "Caio", "2025-03-10 17:00:00", punch.KindOut, punch.OpOut),
		rec(t, "Caio", "2025-03-11 07:02:00", punch.KindIn, punch.OpIn),
		rec(t, "Caio", "2025-03-11 16:58:00", punch.KindOut, punch.OpOut),
	}

	assert.Equal(t, analysis.ScheduleRegular, Classify(records, testSettings()))
}

func TestClassify_WeekendPunchesIgnored(t *testing.T) {
	// 2025-03-08 is a Saturday. Weekend punches carry no classification
	// signal; with only a Saturday In, the In series is empty.
	records := []punch.Record{
		rec(t, "Ana", "2025-03-08 07:00:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 16:00:00", punch.KindOut, punch.OpOut),
	}

	assert.Equal(t, analysis.ScheduleRegular, Classify(records, testSettings()))
}

func TestClassify_InsufficientDataDefaultsToRegular(t *testing.T) {
	assert.Equal(t, analysis.ScheduleRegular, Classify(nil, testSettings()))

	onlyIns := []punch.Record{
		rec(t, "Ana", "2025-03-10 07:00:00", punch.KindIn, punch.OpIn),
	}
	assert.Equal(t, analysis.ScheduleRegular, Classify(onlyIns, testSettings()))
}

func TestClassify_Deterministic(t *testing.T) {
	// Two employees with identical punch-time distributions classify
	// identically.
	ana := []punch.Record{
		rec(t, "Ana", "2025-03-10 06:59:00", punch.KindIn, punch.OpIn),
		rec(t, "Ana", "2025-03-10 16:01:00", punch.KindOut, punch.OpOut),
	}
	beto := []punch.Record{
		rec(t, "Beto", "2025-03-10 06:59:00", punch.KindIn, punch.OpIn),
		rec(t, "Beto", "2025-03-10 16:01:00", punch.KindOut, punch.OpOut),
	}

	assert.Equal(t, Classify(ana, testSettings()), Classify(beto, testSettings()))
}
