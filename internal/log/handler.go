package log

import (
	"context"
	"log/slog"

	"github.com/ErlanBelekov/phonebook/internal/identity"
	"github.com/ErlanBelekov/phonebook/internal/requestid"
)

// ContextHandler wraps an slog.Handler and adds request-scoped attributes
// (request_id, user_id) from the context of each log record.
type ContextHandler struct {
	inner slog.Handler
}

func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := requestid.FromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	if u := identity.FromContext(ctx); u != nil {
		r.AddAttrs(slog.String("user_id", u.ID))
	}
	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}
