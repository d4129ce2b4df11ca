package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/phonebook/internal/crypto"
	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/ErlanBelekov/phonebook/internal/metrics"
	"github.com/ErlanBelekov/phonebook/internal/repository"
)

// tokenIssuer is satisfied by *token.Service.
type tokenIssuer interface {
	Issue(userID, username string) (string, error)
}

type AuthUsecase struct {
	users  repository.UserRepository
	tokens tokenIssuer
}

func NewAuthUsecase(users repository.UserRepository, tokens tokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Register hashes the password and stores a new user. A taken username
// yields domain.ErrUserExists, a password over the bcrypt limit
// domain.ErrPasswordTooLong.
func (u *AuthUsecase) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "rejected").Inc()
			return nil, domain.ErrPasswordTooLong
		}
		return nil, err
	}

	user, err := u.users.Create(ctx, username, hash)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", outcome(err)).Inc()
		return nil, fmt.Errorf("register: %w", err)
	}
	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return user, nil
}

// Authenticate returns the user matching username and password.
func (u *AuthUsecase) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", outcome(err)).Inc()
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return user, nil
}

func (u *AuthUsecase) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return u.users.FindByID(ctx, id)
}

// IssueToken signs a fresh token for user.
func (u *AuthUsecase) IssueToken(user *domain.User) (string, error) {
	signed, err := u.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

func outcome(err error) string {
	if domain.KindOf(err) == domain.KindInternal {
		return "error"
	}
	return "rejected"
}
