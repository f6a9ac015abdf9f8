package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pos-backend/internal/data/entity"
	"pos-backend/internal/data/repository"
	"pos-backend/internal/dto/request"
	"pos-backend/internal/dto/response"
	"pos-backend/internal/notify"
	"pos-backend/pkg/token"
	"pos-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error)
	Logout(ctx context.Context, auth *utils.AuthContext) error
}

type authService struct {
	repo   *repository.Repository
	tokens *token.Service
	sink   notify.Sink
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tokens *token.Service,
	sink notify.Sink,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		sink:   sink,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	// 1. Cek email sudah terdaftar
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	// 3. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         strings.TrimSpace(req.Name),
		Role:         entity.RoleStaff,
		IsActive:     true,
		IsFirstLogin: false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// 4. Issue token pair + persist refresh token
	accessToken, refreshToken, err := s.issueAndStorePair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// best-effort, kegagalan sink tidak menggagalkan register
	s.sink.EmitToAll("user-logged-in", map[string]any{
		"userId":    user.ID.String(),
		"name":      user.Name,
		"role":      user.Role,
		"timestamp": time.Now(),
	})

	return response.AuthToResponse(user, accessToken, refreshToken), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	// 1. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// 2. Unknown email dan password salah menghasilkan error identik
	// untuk mencegah account enumeration
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountDeactivated
	}

	// 5. Issue token pair; refresh token lama tertimpa di sini, jadi
	// sesi sebelumnya otomatis tidak bisa refresh lagi
	accessToken, refreshToken, err := s.issueAndStorePair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	s.sink.EmitToAll("user-logged-in", map[string]any{
		"userId":    user.ID.String(),
		"name":      user.Name,
		"role":      user.Role,
		"timestamp": time.Now(),
	})

	return response.AuthToResponse(user, accessToken, refreshToken), nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error) {
	// 1. Verify signature/expiry
	userIDStr, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// 2. Find user termasuk stored refresh token
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for refresh", zap.Error(err), zap.String("user_id", userIDStr))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// 3. Rotation check: token hanya valid kalau persis sama dengan yang
	// tersimpan. Token lama yang sudah dirotasi selalu gagal di sini
	// walaupun signature dan expiry-nya masih bagus.
	if user == nil || user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		s.log.Warn("Refresh token rotation check failed", zap.String("user_id", userIDStr))
		return nil, ErrInvalidRefreshToken
	}

	// 4. Issue pasangan baru dan rotasi
	accessToken, newRefreshToken, err := s.issueAndStorePair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Token refreshed", zap.String("user_id", user.ID.String()))

	return &response.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout idempotent: tanpa user tetap sukses
func (s *authService) Logout(ctx context.Context, auth *utils.AuthContext) error {
	if auth == nil {
		return nil
	}

	// Clear refresh token, invalidasi semua refresh berikutnya
	if err := s.repo.User.UpdateRefreshToken(ctx, auth.UserID, nil); err != nil {
		s.log.Error("Failed to clear refresh token", zap.Error(err), zap.String("user_id", auth.UserID.String()))
		return fmt.Errorf("failed to logout: %w", err)
	}

	s.log.Info("User logged out", zap.String("user_id", auth.UserID.String()))

	s.sink.EmitToAll("user-logged-out", map[string]any{
		"userId":    auth.UserID.String(),
		"name":      auth.Name,
		"timestamp": time.Now(),
	})

	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) issueAndStorePair(ctx context.Context, userID uuid.UUID) (string, string, error) {
	accessToken, refreshToken, err := s.tokens.IssuePair(userID.String())
	if err != nil {
		s.log.Error("Failed to issue token pair", zap.Error(err), zap.String("user_id", userID.String()))
		return "", "", fmt.Errorf("failed to issue tokens: %w", err)
	}

	if err := s.repo.User.UpdateRefreshToken(ctx, userID, &refreshToken); err != nil {
		s.log.Error("Failed to store refresh token", zap.Error(err), zap.String("user_id", userID.String()))
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
