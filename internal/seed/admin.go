package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pos-backend/internal/data/entity"
	"pos-backend/internal/data/repository"
	"pos-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EnsureDefaultAdmin membuat akun admin default dari env saat startup
// kalau belum ada. Skip kalau ADMIN_EMAIL kosong atau sudah terdaftar.
func EnsureDefaultAdmin(ctx context.Context, repo *repository.Repository, cfg utils.AdminConfig, log *zap.Logger) error {
	if cfg.Email == "" {
		log.Info("No default admin configured, skipping seed")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.Email))

	existing, err := repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check default admin: %w", err)
	}
	if existing != nil {
		log.Info("Default admin already exists, skipping seed", zap.String("email", email))
		return nil
	}

	if cfg.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required to seed default admin")
	}

	hashedPassword, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	now := time.Now()
	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         cfg.Name,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		IsFirstLogin: false,
	}

	if err := repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	log.Info("Default admin created",
		zap.String("email", admin.Email),
		zap.String("user_id", admin.ID.String()))

	return nil
}
