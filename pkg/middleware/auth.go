package middleware

import (
	"net/http"
	"strings"

	"pos-backend/internal/data/repository"
	"pos-backend/pkg/token"
	"pos-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authenticate memvalidasi access token bearer, lalu resolve user dari
// store di SETIAP request. Token yang masih hidup tidak cukup: akun yang
// sudah dihapus atau dinonaktifkan harus langsung kehilangan akses.
func Authenticate(userRepo repository.UserRepository, tokens *token.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "No token provided")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			// Verify access token
			userIDStr, err := tokens.VerifyAccess(parts[1])
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// Resolve user; bisa saja sudah dihapus setelah token terbit
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve user for auth",
					zap.Error(err),
					zap.String("user_id", userIDStr))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Token for deleted user", zap.String("user_id", userIDStr))
				utils.ResponseUnauthorized(w, "User not found")
				return
			}

			// Deactivation berlaku langsung di request berikutnya
			if !user.IsActive {
				logger.Warn("Deactivated user rejected",
					zap.String("user_id", userIDStr),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Account deactivated")
				return
			}

			ctx := utils.SetAuthContext(r.Context(), &utils.AuthContext{
				UserID:       user.ID,
				Email:        user.Email,
				Name:         user.Name,
				Role:         string(user.Role),
				IsActive:     user.IsActive,
				IsFirstLogin: user.IsFirstLogin,
				CreatedAt:    user.CreatedAt,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole dipasang SETELAH Authenticate; tolak kalau role user tidak
// ada di allowed set
func RequireRole(logger *zap.Logger, allowedRoles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, ok := utils.GetAuthContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !allowed[auth.Role] {
				logger.Warn("Role gate rejected",
					zap.String("user_id", auth.UserID.String()),
					zap.String("role", auth.Role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
