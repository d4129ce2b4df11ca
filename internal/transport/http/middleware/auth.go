package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/ErlanBelekov/phonebook/internal/identity"
	"github.com/ErlanBelekov/phonebook/internal/metrics"
	"github.com/ErlanBelekov/phonebook/internal/token"
	"github.com/gin-gonic/gin"
)

const (
	errUnauthorized   = "unauthorized"
	errInternalServer = "internal server error"

	bearerPrefix = "Bearer "

	// UserIDKey holds the authenticated user's id in the gin context.
	UserIDKey = "userID"
)

type tokenVerifier interface {
	Verify(ctx context.Context, raw string) (*token.Claims, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth verifies the Bearer token, loads the user it names and attaches that
// user to the request context. Any failure short-circuits with 401, except
// store errors which are 500.
func Auth(tokens tokenVerifier, users userFinder, logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "auth_gate")

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		rawToken := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if !strings.HasPrefix(header, bearerPrefix) || rawToken == "" {
			reject(c, "missing_token")
			return
		}

		claims, err := tokens.Verify(ctx, rawToken)
		if err != nil {
			reject(c, "invalid_token")
			return
		}

		user, err := users.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				reject(c, "unknown_user")
				return
			}
			logger.ErrorContext(ctx, "resolve token user", "user_id", claims.UserID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
			return
		}

		c.Request = c.Request.WithContext(identity.WithUser(ctx, user))
		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}

func reject(c *gin.Context, reason string) {
	metrics.AuthGateRejectionsTotal.WithLabelValues(reason).Inc()
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errUnauthorized})
}
