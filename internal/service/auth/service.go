package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/user"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
	oauth      oauth.GoogleService
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service, oauthService oauth.GoogleService) auth.Service {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		oauth:      oauthService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if !existing.HasPassword() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*existing.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(existing)
}

func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, token *oauth2.Token) (auth.TokenResponse, error) {
	info, err := s.oauth.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrUnverifiedGoogleUser
	}

	email := strings.ToLower(info.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, err
		}
		name, _, _ := strings.Cut(email, "@")
		created, err := s.userRepo.Create(ctx, &user.User{
			Email:    email,
			Name:     name,
			GoogleID: &info.GoogleID,
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
		return s.issueTokens(created)
	}

	if existing.GoogleID == nil {
		if err := s.userRepo.LinkGoogleAccount(ctx, existing.ID, info.GoogleID); err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return s.issueTokens(existing)
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	// Rotate the refresh token on every use.
	s.jwtService.RevokeToken(req.RefreshToken)

	return s.issueTokens(existing)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens(u *user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
