package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsBusinessDay(t *testing.T) {
	svc := NewService()

	christmas := time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC)
	assert.False(t, svc.IsBusinessDay(christmas, "BR"))
	assert.True(t, svc.IsHoliday(christmas, "BR"))

	ordinaryTuesday := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)
	assert.True(t, svc.IsBusinessDay(ordinaryTuesday, "BR"))
	assert.False(t, svc.IsHoliday(ordinaryTuesday, "BR"))
}

func TestIsBusinessDay_UnknownCountryFallsBackToWeekday(t *testing.T) {
	svc := NewService()

	saturday := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.False(t, svc.IsBusinessDay(saturday, "XX"))
	assert.True(t, svc.IsBusinessDay(monday, "XX"))
	assert.False(t, svc.IsHoliday(monday, "XX"))
}

func TestSupportedCountries(t *testing.T) {
	svc := NewService()
	assert.Contains(t, svc.SupportedCountries(), "BR")
	assert.Contains(t, svc.SupportedCountries(), "US")
}
