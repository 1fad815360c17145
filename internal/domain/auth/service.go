package auth

import (
	"context"

	"golang.org/x/oauth2"
)

type Service interface {
	// Login authenticates a user with email and password.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// LoginWithGoogle authenticates a user via a verified Google account,
	// creating or linking the local account as needed.
	LoginWithGoogle(ctx context.Context, token *oauth2.Token) (TokenResponse, error)
	// RefreshToken issues a new access token from a valid refresh token.
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)
	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
