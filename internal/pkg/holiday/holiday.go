package holiday

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/br"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/mx"
	"github.com/rickar/cal/v2/pt"
	"github.com/rickar/cal/v2/us"
)

// Service answers public-holiday questions for the calendar views. The
// analysis core itself derives company workdays from punches alone; callers
// use this to pre-filter ranges or annotate the calendar.
type Service struct {
	calendars map[string]*cal.BusinessCalendar
}

func NewService() *Service {
	s := &Service{
		calendars: make(map[string]*cal.BusinessCalendar),
	}
	s.add("BR", "Brazil", br.Holidays...)
	s.add("PT", "Portugal", pt.Holidays...)
	s.add("ES", "Spain", es.Holidays...)
	s.add("MX", "Mexico", mx.Holidays...)
	s.add("US", "United States", us.Holidays...)
	s.add("GB", "United Kingdom", gb.Holidays...)
	s.add("DE", "Germany", de.Holidays...)
	s.add("FR", "France", fr.Holidays...)
	return s
}

func (s *Service) add(code, name string, holidays ...*cal.Holiday) {
	c := cal.NewBusinessCalendar()
	c.Name = name
	c.AddHoliday(holidays...)
	s.calendars[code] = c
}

// IsBusinessDay reports whether t is a working day in the given country.
// An unknown country code falls back to a plain weekday test.
func (s *Service) IsBusinessDay(t time.Time, countryCode string) bool {
	c, ok := s.calendars[countryCode]
	if !ok {
		return !cal.IsWeekend(t)
	}
	return c.IsWorkday(t)
}

// IsHoliday reports whether t is a public holiday (not merely a weekend) in
// the given country. Unknown countries have no holidays.
func (s *Service) IsHoliday(t time.Time, countryCode string) bool {
	c, ok := s.calendars[countryCode]
	if !ok {
		return false
	}
	actual, _, _ := c.IsHoliday(t)
	return actual
}

// SupportedCountries lists the country codes with a configured calendar.
func (s *Service) SupportedCountries() []string {
	codes := make([]string, 0, len(s.calendars))
	for code := range s.calendars {
		codes = append(codes, code)
	}
	return codes
}
