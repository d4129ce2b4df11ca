package requestid_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ErlanBelekov/phonebook/internal/requestid"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, "abc-123", requestid.Resolve("abc-123"))

	for _, in := range []string{"", "has space", "line\nbreak", strings.Repeat("x", 65)} {
		got := requestid.Resolve(in)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "input %q should be replaced by a uuid, got %q", in, got)
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := requestid.WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}
