package repository

import (
	"context"

	"github.com/ErlanBelekov/phonebook/internal/domain"
)

type UserRepository interface {
	// Create returns domain.ErrUserExists when the username is taken.
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
