package http

import (
	"net/http"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/holiday"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type HolidayHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
	Countries(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService *holiday.Service
}

func NewHolidayHandler(holidayService *holiday.Service) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

type holidayCheckResponse struct {
	Date          string `json:"date"`
	Country       string `json:"country"`
	IsBusinessDay bool   `json:"is_business_day"`
	IsHoliday     bool   `json:"is_holiday"`
	Weekday       string `json:"weekday"`
}

// Check implements HolidayHandler. Query params: date (YYYY-MM-DD) and
// country (ISO 3166-1 alpha-2).
func (h *HolidayHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors

	dateParam := r.URL.Query().Get("date")
	date, ok := validator.IsValidDate(dateParam)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}

	country := r.URL.Query().Get("country")
	if !validator.IsValidCountryCode(country) {
		errs = append(errs, validator.ValidationError{Field: "country", Message: "must be a two-letter uppercase country code"})
	}

	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	response.Success(w, holidayCheckResponse{
		Date:          date.Format(time.DateOnly),
		Country:       country,
		IsBusinessDay: h.holidayService.IsBusinessDay(date, country),
		IsHoliday:     h.holidayService.IsHoliday(date, country),
		Weekday:       date.Weekday().String(),
	})
}

// Countries implements HolidayHandler.
func (h *HolidayHandlerImpl) Countries(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.holidayService.SupportedCountries())
}
