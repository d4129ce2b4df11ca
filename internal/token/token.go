// Package token issues and verifies the signed identity tokens handed out at
// login and registration. Verification is stateless: nothing is stored server-side.
package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed validity window of every issued token.
const TTL = 24 * time.Hour

type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Service struct {
	key    []byte
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Service)

// WithClock overrides the time source used for both issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService returns a Service signing with key. The key is never rotated
// during the lifetime of the Service.
func NewService(key []byte, opts ...Option) *Service {
	s := &Service{
		key:    key,
		ttl:    TTL,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "token")
	return s
}

// Issue signs a token for the given identity, valid for TTL from now.
func (s *Service) Issue(userID, username string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// Verify returns the claims of a valid token. Every failure is reported as
// domain.ErrUnauthorized; the underlying reason is only logged.
func (s *Service) Verify(ctx context.Context, raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		reason := "invalid"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "expired"
		}
		s.logger.DebugContext(ctx, "token rejected", "reason", reason, "error", err)
		return nil, domain.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		s.logger.DebugContext(ctx, "token rejected", "reason", "claims")
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
