package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/ErlanBelekov/phonebook/internal/identity"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	IssueToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	setupValidation()
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=8,max=50"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// POST /api/user/registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "register", err)
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, "register", err)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "user registered", "user_id", user.ID)
	h.respondToken(c, user)
}

// POST /api/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "login", err)
		return
	}

	user, err := h.authUsecase.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, "login", err)
		return
	}

	h.respondToken(c, user)
}

// GET /api/user/check
// Re-issues a token for the authenticated caller. The body is the bare
// token string, not an object.
func (h *AuthHandler) Check(c *gin.Context) {
	user := identity.FromContext(c.Request.Context())
	if user == nil {
		respondError(c, h.logger, "check", domain.ErrUnauthorized)
		return
	}

	signed, err := h.authUsecase.IssueToken(user)
	if err != nil {
		respondError(c, h.logger, "check", err)
		return
	}
	c.JSON(http.StatusOK, signed)
}

func (h *AuthHandler) respondToken(c *gin.Context, user *domain.User) {
	signed, err := h.authUsecase.IssueToken(user)
	if err != nil {
		respondError(c, h.logger, "issue token", err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: signed})
}
