package punch

import (
	"fmt"
	"time"
)

// Kind is the type of clock event.
type Kind string

const (
	KindIn    Kind = "in"
	KindOut   Kind = "out"
	KindBreak Kind = "break"
)

// Op qualifies break punches: a break punch with OpOut marks the start of the
// break (the employee leaves), OpIn marks the end (the employee returns).
// In/Out punches carry the matching op for symmetry.
type Op string

const (
	OpIn  Op = "in"
	OpOut Op = "out"
)

// Record is one observed clock event. Department and BadgeNo are opaque
// passthrough fields from the time-clock export; they play no role in the
// analysis. Records are immutable once ingested.
type Record struct {
	EmployeeName string
	Department   string
	BadgeNo      string
	Timestamp    time.Time
	Kind         Kind
	Op           Op
}

// TimestampLayout is the wire format the ingestion layer guarantees.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-date key format used for daily buckets.
const DateLayout = "2006-01-02"

// ParseTimestamp parses a wire-format timestamp. Errors wrap
// ErrMalformedTimestamp so callers can map them uniformly.
func ParseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	return ts, nil
}

// ValidKind reports whether k is one of the known punch kinds.
func ValidKind(k Kind) bool {
	return k == KindIn || k == KindOut || k == KindBreak
}

// ValidOp reports whether o is one of the known operation tags.
func ValidOp(o Op) bool {
	return o == OpIn || o == OpOut
}
