package settings

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
)

// UserSettings is one user's saved analysis configuration. The engine never
// reads these directly; the settings service resolves them into an
// analysis.Settings value that is passed into each call.
type UserSettings struct {
	UserID    string
	Settings  analysis.Settings
	CreatedAt time.Time
	UpdatedAt time.Time
}
