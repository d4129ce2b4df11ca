package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the request ID in both directions.
const Header = "X-Request-ID"

const maxLen = 64

type ctxKey struct{}

// New generates a random UUID v4 request ID.
func New() string {
	return uuid.NewString()
}

// Resolve keeps a client-supplied ID when it is short printable ASCII,
// otherwise it generates a fresh one. Client IDs end up in logs verbatim.
func Resolve(incoming string) string {
	if incoming == "" || len(incoming) > maxLen {
		return New()
	}
	for i := 0; i < len(incoming); i++ {
		if c := incoming[i]; c < 0x21 || c > 0x7e {
			return New()
		}
	}
	return incoming
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the request ID from ctx. Returns "" if absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
