package wire

import (
	"net/http"
	"time"

	"pos-backend/internal/adaptor"
	"pos-backend/internal/data/repository"
	"pos-backend/internal/mail"
	"pos-backend/internal/notify"
	"pos-backend/internal/usecase"
	"pos-backend/pkg/middleware"
	"pos-backend/pkg/token"
	"pos-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
	Hub    *notify.Hub
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Token service dengan secret terpisah untuk access/refresh
	tokens := token.NewService(
		config.JWT.AccessSecret,
		config.JWT.RefreshSecret,
		time.Duration(config.JWT.AccessExpiryMinutes)*time.Minute,
		time.Duration(config.JWT.RefreshExpiryDays)*24*time.Hour,
	)

	// Broadcast hub untuk notifikasi UI
	hub := notify.NewHub(logger)

	// Mail sender, no-op kalau SMTP tidak dikonfigurasi
	var mailer mail.Sender = mail.Discard{}
	if config.Email.Host != "" {
		mailer = mail.NewSMTPSender(config.Email, logger)
	}

	service := usecase.NewService(repo, tokens, hub, mailer, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, hub, config, logger)

	return &App{
		Router: router,
		Hub:    hub,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *token.Service,
	hub *notify.Hub,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.ClientURL))

	// Apply routes
	wireAuth(r, handler.Auth, repo, tokens, logger)
	wireStaff(r, handler.Staff, repo, tokens, logger)

	// Websocket endpoint untuk notifikasi real-time
	r.Get("/ws", hub.HandleWS)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Server is running", map[string]any{
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "POS Server API is running", map[string]any{
			"version": "1.0.0",
		})
	})

	// 404 dalam envelope yang sama
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}
