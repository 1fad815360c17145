package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
	"github.com/pontolabs/ponto-backend-go/internal/service/settings"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	cfg, err := h.settingsService.Get(r.Context(), userID)
	if err != nil {
		slog.Error("Settings get error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}

// Save implements SettingsHandler.
func (h *SettingsHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var cfg analysis.Settings
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		slog.Error("Settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.settingsService.Save(r.Context(), userID, cfg)
	if err != nil {
		slog.Error("Settings save error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings saved", saved)
}
