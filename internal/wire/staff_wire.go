package wire

import (
	"pos-backend/internal/adaptor"
	"pos-backend/internal/data/entity"
	"pos-backend/internal/data/repository"
	"pos-backend/pkg/middleware"
	"pos-backend/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireStaff: semua route staff butuh autentikasi DAN role admin
func wireStaff(
	r chi.Router,
	staffHandler *adaptor.StaffHandler,
	repo *repository.Repository,
	tokens *token.Service,
	log *zap.Logger,
) {
	r.Route("/api/staff", func(r chi.Router) {
		r.Use(middleware.Authenticate(repo.User, tokens, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		r.Post("/", staffHandler.Create)
		r.Get("/", staffHandler.List)
		r.Get("/{id}", staffHandler.Get)
		r.Put("/{id}", staffHandler.Update)

		r.Patch("/{id}/deactivate", staffHandler.Deactivate)
		r.Patch("/{id}/reactivate", staffHandler.Reactivate)
		r.Delete("/{id}", staffHandler.Delete)

		r.Post("/{id}/reset-password", staffHandler.ResetPassword)
	})
}
