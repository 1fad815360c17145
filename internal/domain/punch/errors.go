package punch

import "errors"

// Punch domain errors
var (
	ErrMalformedTimestamp = errors.New("punch timestamp does not match expected format")
	ErrUnknownKind        = errors.New("unknown punch kind")
	ErrUnknownOp          = errors.New("unknown punch operation tag")
	ErrEmptyUpload        = errors.New("upload contains no punch rows")
)
