package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	errInternalServer = "internal server error"
	errInvalidBody    = "invalid request body"
)

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// respondError is the single place where error kinds become HTTP statuses.
// Internal errors are logged and never echoed to the client.
func respondError(c *gin.Context, logger *slog.Logger, op string, err error) {
	var derr *domain.Error
	errors.As(err, &derr)

	switch domain.KindOf(err) {
	case domain.KindBadRequest:
		c.JSON(http.StatusBadRequest, errorResponse{Message: derr.Message, Errors: derr.Fields})
	case domain.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, errorResponse{Message: derr.Message})
	default:
		logger.ErrorContext(c.Request.Context(), op, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Message: errInternalServer})
	}
}
