package response

import (
	"errors"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/analysis"
	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/punch"
	"github.com/pontolabs/ponto-backend-go/internal/domain/user"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Punch domain errors
	case errors.Is(err, punch.ErrMalformedTimestamp),
		errors.Is(err, punch.ErrUnknownKind),
		errors.Is(err, punch.ErrUnknownOp):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, punch.ErrEmptyUpload):
		BadRequest(w, "Upload contains no punch rows", nil)

	// Analysis domain errors
	case errors.Is(err, analysis.ErrNoPunches):
		NotFound(w, "No punch records found for the requested period")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUnverifiedGoogleUser):
		Unauthorized(w, "Google account email is not verified")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailConflict):
		Conflict(w, "Email already registered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
