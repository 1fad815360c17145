package analysis

import (
	"math"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/timeutil"
)

// Classify infers which configured schedule an employee follows from their
// filtered punches. The mean weekday In time and mean weekday Out time must
// BOTH sit closer to the early schedule than to the regular one for the
// employee to classify as early. The classification is global for the
// employee: one schedule for every day of the period.
//
// An employee with no weekday In punches or no weekday Out punches has no
// usable mean; insufficient data defaults to the regular schedule.
func Classify(records []punch.Record, settings analysis.Settings) analysis.ScheduleKind {
	var inMinutes, outMinutes []int
	for _, rec := range records {
		if timeutil.IsWeekend(rec.Timestamp) {
			continue
		}
		m := timeutil.MinutesSinceMidnight(rec.Timestamp)
		switch rec.Kind {
		case punch.KindIn:
			inMinutes = append(inMinutes, m)
		case punch.KindOut:
			outMinutes = append(outMinutes, m)
		}
	}

	if len(inMinutes) == 0 || len(outMinutes) == 0 {
		return analysis.ScheduleRegular
	}

	meanIn := mean(inMinutes)
	meanOut := mean(outMinutes)

	inCloserToEarly := math.Abs(meanIn-float64(settings.Early.StartMinute)) <
		math.Abs(meanIn-float64(settings.Regular.StartMinute))
	outCloserToEarly := math.Abs(meanOut-float64(settings.Early.EndMinute)) <
		math.Abs(meanOut-float64(settings.Regular.EndMinute))

	if inCloserToEarly && outCloserToEarly {
		return analysis.ScheduleEarly
	}
	return analysis.ScheduleRegular
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
