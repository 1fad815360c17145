package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/settings"
)

// Service resolves and stores per-user analysis settings. A user with no
// saved row gets the configured defaults.
type Service interface {
	Get(ctx context.Context, userID string) (analysis.Settings, error)
	Save(ctx context.Context, userID string, s analysis.Settings) (analysis.Settings, error)
}

type SettingsServiceImpl struct {
	repo     settings.Repository
	defaults analysis.Settings
}

func NewSettingsService(repo settings.Repository, defaults analysis.Settings) Service {
	return &SettingsServiceImpl{
		repo:     repo,
		defaults: defaults,
	}
}

// Get implements Service.
func (s *SettingsServiceImpl) Get(ctx context.Context, userID string) (analysis.Settings, error) {
	saved, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return s.defaults, nil
		}
		return analysis.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return saved.Settings, nil
}

// Save implements Service.
func (s *SettingsServiceImpl) Save(ctx context.Context, userID string, cfg analysis.Settings) (analysis.Settings, error) {
	if err := cfg.Validate(); err != nil {
		return analysis.Settings{}, err
	}

	saved, err := s.repo.Upsert(ctx, userID, cfg)
	if err != nil {
		return analysis.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return saved.Settings, nil
}
