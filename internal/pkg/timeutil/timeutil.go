package timeutil

import "time"

// MinutesSinceMidnight returns the minute-of-day for t (hours*60 + minutes).
// Seconds are ignored.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsSaturday reports whether t falls on a Saturday.
func IsSaturday(t time.Time) bool {
	return t.Weekday() == time.Saturday
}

// DateOf truncates t to its calendar date (midnight, same location).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWithinRange reports whether day falls inside [start, end] at calendar-day
// granularity. Both ends are inclusive.
func IsWithinRange(day, start, end time.Time) bool {
	d := DateOf(day)
	return !d.Before(DateOf(start)) && !d.After(DateOf(end))
}
