package httptransport

import (
	"log/slog"
	"slices"

	"github.com/ErlanBelekov/phonebook/internal/repository"
	"github.com/ErlanBelekov/phonebook/internal/requestid"
	"github.com/ErlanBelekov/phonebook/internal/token"
	"github.com/ErlanBelekov/phonebook/internal/transport/http/handler"
	"github.com/ErlanBelekov/phonebook/internal/transport/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
	tokens *token.Service,
	users repository.UserRepository,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(newCORS(allowedOrigins))
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(tokens, users, logger)

	api := r.Group("/api")

	user := api.Group("/user")
	user.POST("/registration", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.GET("/check", authMW, authHandler.Check)

	// Protected contact routes
	contacts := api.Group("/contact", authMW)
	contacts.GET("", contactHandler.List)
	contacts.POST("/create", contactHandler.Create)
	contacts.POST("/edit", contactHandler.Edit)
	contacts.DELETE("/delete", contactHandler.Delete)

	return r
}

// newCORS allows every origin when none are configured or "*" is listed.
func newCORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	cfg.AddAllowHeaders("Authorization", requestid.Header)
	cfg.AddExposeHeaders(requestid.Header)
	return cors.New(cfg)
}
