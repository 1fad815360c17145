package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesSinceMidnight(t *testing.T) {
	ts := time.Date(2025, 3, 10, 8, 10, 59, 0, time.UTC)
	assert.Equal(t, 490, MinutesSinceMidnight(ts))

	midnight := time.Date(2025, 3, 10, 0, 0, 30, 0, time.UTC)
	assert.Equal(t, 0, MinutesSinceMidnight(midnight))
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
	assert.False(t, IsWeekend(monday))

	assert.True(t, IsSaturday(saturday))
	assert.False(t, IsSaturday(sunday))
}

func TestIsWithinRange(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	// Both ends inclusive, time-of-day ignored.
	assert.True(t, IsWithinRange(time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC), start, end))
	assert.True(t, IsWithinRange(time.Date(2025, 3, 15, 7, 0, 0, 0, time.UTC), start, end))
	assert.True(t, IsWithinRange(time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), start, end))
	assert.False(t, IsWithinRange(time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC), start, end))
	assert.False(t, IsWithinRange(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), start, end))
}
