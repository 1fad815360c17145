package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked  = errors.New("refresh token has been revoked")
	ErrUnverifiedGoogleUser = errors.New("google account email is not verified")
)
