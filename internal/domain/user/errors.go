package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailConflict = errors.New("email already registered")
)
