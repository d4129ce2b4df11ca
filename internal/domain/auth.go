package domain

import (
	"time"
)

var (
	ErrUserNotFound       = NewError(KindBadRequest, "user not found")
	ErrUserExists         = NewError(KindBadRequest, "user already exists")
	ErrInvalidCredentials = NewError(KindUnauthorized, "invalid username or password")
	ErrUnauthorized       = NewError(KindUnauthorized, "unauthorized")
	ErrPasswordTooLong    = NewError(KindBadRequest, "password must be at most 72 bytes")
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
