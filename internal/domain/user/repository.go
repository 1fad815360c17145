package user

import "context"

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	LinkGoogleAccount(ctx context.Context, userID string, googleID string) error
}
