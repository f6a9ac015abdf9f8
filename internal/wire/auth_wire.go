package wire

import (
	"pos-backend/internal/adaptor"
	"pos-backend/internal/data/repository"
	"pos-backend/pkg/middleware"
	"pos-backend/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	tokens *token.Service,
	log *zap.Logger,
) {
	r.Route("/api/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh-token", authHandler.RefreshToken)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(repo.User, tokens, log))
			r.Post("/logout", authHandler.Logout)
			r.Get("/profile", authHandler.Profile)
		})
	})
}
