package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
	"github.com/pontolabs/ponto-backend-go/internal/service/settings"
)

type AnalysisHandler interface {
	AnalyzePeriod(w http.ResponseWriter, r *http.Request)
	EvaluateDay(w http.ResponseWriter, r *http.Request)
}

type AnalysisHandlerImpl struct {
	analysisService analysis.Service
	settingsService settings.Service
}

func NewAnalysisHandler(analysisService analysis.Service, settingsService settings.Service) AnalysisHandler {
	return &AnalysisHandlerImpl{
		analysisService: analysisService,
		settingsService: settingsService,
	}
}

// resolveSettings fills in the caller's saved settings when the request does
// not carry inline ones. Precedence: inline > saved > configured defaults
// (the service falls back to defaults on a nil Settings).
func (h *AnalysisHandlerImpl) resolveSettings(r *http.Request, inline *analysis.Settings) (*analysis.Settings, error) {
	if inline != nil {
		return inline, nil
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return nil, nil
	}
	saved, err := h.settingsService.Get(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// AnalyzePeriod implements AnalysisHandler.
func (h *AnalysisHandlerImpl) AnalyzePeriod(w http.ResponseWriter, r *http.Request) {
	var req analysis.AnalyzeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AnalyzePeriod decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resolved, err := h.resolveSettings(r, req.Settings)
	if err != nil {
		slog.Error("AnalyzePeriod settings error", "error", err)
		response.HandleError(w, err)
		return
	}
	req.Settings = resolved

	results, err := h.analysisService.AnalyzePeriod(r.Context(), req)
	if err != nil {
		slog.Error("AnalyzePeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// EvaluateDay implements AnalysisHandler.
func (h *AnalysisHandlerImpl) EvaluateDay(w http.ResponseWriter, r *http.Request) {
	var req analysis.EvaluateDayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("EvaluateDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resolved, err := h.resolveSettings(r, req.Settings)
	if err != nil {
		slog.Error("EvaluateDay settings error", "error", err)
		response.HandleError(w, err)
		return
	}
	req.Settings = resolved

	metrics, err := h.analysisService.EvaluateDay(r.Context(), req)
	if err != nil {
		slog.Error("EvaluateDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, metrics)
}
