package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/timeutil"
)

// AnalyzePeriod drives the full pipeline over every employee in the punch
// set, for the inclusive date range [start, end]. Results come back sorted
// by employee name.
//
// The company workday set is derived first: any weekday in range with at
// least one punch from any employee counts. Absences for an employee are the
// company workdays on which that employee has no weekday record, so a
// workday derived only from an employee's own punches can never produce a
// false absence for them. Employees are independent once the workday set
// exists.
func AnalyzePeriod(records []punch.Record, start, end time.Time, s analysis.Settings) []analysis.Result {
	companyWorkdays := make(map[string]struct{})
	for _, rec := range records {
		if timeutil.IsWeekend(rec.Timestamp) || !timeutil.IsWithinRange(rec.Timestamp, start, end) {
			continue
		}
		companyWorkdays[rec.Timestamp.Format(punch.DateLayout)] = struct{}{}
	}

	// Exact string match is the identity key. No normalization: two
	// employees sharing a name merge, by contract with the export format.
	byEmployee := make(map[string][]punch.Record)
	names := make([]string, 0)
	for _, rec := range records {
		if _, seen := byEmployee[rec.EmployeeName]; !seen {
			names = append(names, rec.EmployeeName)
		}
		byEmployee[rec.EmployeeName] = append(byEmployee[rec.EmployeeName], rec)
	}
	sort.Strings(names)

	results := make([]analysis.Result, 0, len(names))
	for _, name := range names {
		results = append(results, analyzeEmployee(name, byEmployee[name], companyWorkdays, start, end, s))
	}
	return results
}

func analyzeEmployee(name string, records []punch.Record, companyWorkdays map[string]struct{}, start, end time.Time, s analysis.Settings) analysis.Result {
	filtered := Filter(records, s.DuplicateWindowMinutes)
	kind := Classify(filtered, s)

	// Bucket by calendar date; filtered order is ascending, so each bucket
	// stays sorted.
	buckets := make(map[string][]punch.Record)
	dates := make([]string, 0)
	for _, rec := range filtered {
		key := rec.Timestamp.Format(punch.DateLayout)
		if _, seen := buckets[key]; !seen {
			dates = append(dates, key)
		}
		buckets[key] = append(buckets[key], rec)
	}
	sort.Strings(dates)

	res := analysis.Result{
		EmployeeName: name,
		Schedule:     kind,
		Days:         make(map[string][]punch.Record),
	}

	weekdayDates := make(map[string]struct{})
	for _, date := range dates {
		day := buckets[date]
		first := day[0].Timestamp
		if !timeutil.IsWithinRange(first, start, end) {
			continue
		}

		res.Days[date] = day
		res.DaysWithRecords++

		if timeutil.IsWeekend(first) {
			// Saturday hours are computed here, not in the daily
			// evaluator; a lone punch earns nothing.
			if timeutil.IsSaturday(first) && len(day) >= 2 {
				res.SaturdayHours += day[len(day)-1].Timestamp.Sub(first).Hours()
			}
			continue
		}

		weekdayDates[date] = struct{}{}
		dm := EvaluateDay(day, kind, s)
		if dm.LateMinutes > 0 {
			res.LateDays++
		}
		res.LateMinutes += dm.LateMinutes
		res.LateHours += dm.LateHours
		res.OvertimeHours += dm.OvertimeHours
	}

	for date := range companyWorkdays {
		if _, worked := weekdayDates[date]; !worked {
			res.Absences++
			if s.ShowEmptyDays {
				res.Days[date] = nil
			}
		}
	}

	res.OvertimeHours = RoundHalf(res.OvertimeHours)
	res.SaturdayHours = RoundHalf(res.SaturdayHours)
	res.TotalHours = res.OvertimeHours + res.SaturdayHours
	return res
}

// RoundHalf rounds v to the nearest 0.5: the doubled value is rounded half
// away from zero, then halved. Late hours are never rounded; only overtime
// and Saturday totals pass through here.
func RoundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
