// Package identity carries the authenticated user through a request context.
package identity

import (
	"context"

	"github.com/ErlanBelekov/phonebook/internal/domain"
)

type ctxKey struct{}

// WithUser returns a copy of ctx with u attached.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext returns the user attached by WithUser, or nil.
func FromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(ctxKey{}).(*domain.User)
	return u
}
