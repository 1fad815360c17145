package postgresql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/settings"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepositoryImpl{db: db}
}

// GetByUserID implements settings.Repository.
func (r *settingsRepositoryImpl) GetByUserID(ctx context.Context, userID string) (*settings.UserSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, settings, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1
	`

	var us settings.UserSettings
	var raw []byte
	err := q.QueryRow(ctx, query, userID).Scan(
		&us.UserID,
		&raw,
		&us.CreatedAt,
		&us.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settings.ErrSettingsNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(raw, &us.Settings); err != nil {
		return nil, err
	}

	return &us, nil
}

// Upsert implements settings.Repository.
func (r *settingsRepositoryImpl) Upsert(ctx context.Context, userID string, s analysis.Settings) (*settings.UserSettings, error) {
	q := GetQuerier(ctx, r.db)

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}

	upsertQuery := `
		INSERT INTO user_settings (user_id, settings)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET settings = EXCLUDED.settings, updated_at = NOW()
		RETURNING user_id, created_at, updated_at
	`

	var us settings.UserSettings
	err = q.QueryRow(ctx, upsertQuery, userID, raw).Scan(
		&us.UserID,
		&us.CreatedAt,
		&us.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	us.Settings = s

	return &us, nil
}
