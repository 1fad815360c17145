package settings

import (
	"context"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
)

// Repository persists per-user analysis settings.
type Repository interface {
	// GetByUserID returns the user's saved settings, or ErrSettingsNotFound.
	GetByUserID(ctx context.Context, userID string) (*UserSettings, error)

	// Upsert saves the settings, replacing any previous value for the user.
	Upsert(ctx context.Context, userID string, s analysis.Settings) (*UserSettings, error)
}
