package settings

import "errors"

// Settings domain errors
var (
	ErrSettingsNotFound = errors.New("no saved settings for this user")
)
