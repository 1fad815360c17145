package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/settings"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type fakeSettingsRepo struct {
	saved map[string]analysis.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{saved: make(map[string]analysis.Settings)}
}

func (f *fakeSettingsRepo) GetByUserID(ctx context.Context, userID string) (*settings.UserSettings, error) {
	s, ok := f.saved[userID]
	if !ok {
		return nil, settings.ErrSettingsNotFound
	}
	return &settings.UserSettings{UserID: userID, Settings: s}, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, userID string, s analysis.Settings) (*settings.UserSettings, error) {
	f.saved[userID] = s
	return &settings.UserSettings{UserID: userID, Settings: s}, nil
}

func defaultSettings() analysis.Settings {
	return analysis.Settings{
		DuplicateWindowMinutes: 5,
		LunchDurationMinutes:   60,
		Regular: analysis.Schedule{
			StartMinute:      8 * 60,
			EndMinute:        17 * 60,
			LunchStartMinute: 12 * 60,
			LunchEndMinute:   13 * 60,
		},
		Early: analysis.Schedule{
			StartMinute:      7 * 60,
			EndMinute:        16 * 60,
			LunchStartMinute: 11*60 + 30,
			LunchEndMinute:   12*60 + 30,
		},
		LateThresholds:     analysis.Thresholds{HalfHour: 5, FullHour: 35},
		OvertimeThresholds: analysis.Thresholds{HalfHour: 30, FullHour: 60},
	}
}

func TestGetFallsBackToDefaults(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo(), defaultSettings())

	got, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), got)
}

func TestSaveThenGetReturnsSaved(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo(), defaultSettings())

	custom := defaultSettings()
	custom.DuplicateWindowMinutes = 10
	custom.ShowEmptyDays = true

	saved, err := svc.Save(context.Background(), "user-1", custom)
	require.NoError(t, err)
	assert.Equal(t, custom, saved)

	got, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestSaveRejectsInvalidSettings(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, defaultSettings())

	bad := defaultSettings()
	bad.LunchDurationMinutes = 0

	_, err := svc.Save(context.Background(), "user-1", bad)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Empty(t, repo.saved)
}

func TestSettingsIsolatedPerUser(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo(), defaultSettings())

	custom := defaultSettings()
	custom.LateThresholds = analysis.Thresholds{HalfHour: 10, FullHour: 40}

	_, err := svc.Save(context.Background(), "user-1", custom)
	require.NoError(t, err)

	other, err := svc.Get(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), other)
}
