package analysis

import "errors"

// Analysis domain errors. Malformed ranges and settings surface as
// validator.ValidationErrors from the DTO Validate methods, not as sentinels.
var (
	ErrNoPunches = errors.New("no punches available for the requested range")
)
