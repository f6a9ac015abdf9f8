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
	"pos-backend/internal/mail"
	"pos-backend/internal/notify"
	"pos-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StaffService interface {
	Create(ctx context.Context, actorID uuid.UUID, req *request.CreateStaffRequest) (*response.CreateStaffResponse, error)
	List(ctx context.Context, filter repository.StaffFilter) (*response.StaffListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*response.StaffResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *request.UpdateStaffRequest) (*response.StaffResponse, error)
	SetActive(ctx context.Context, actorID, id uuid.UUID, active bool) error
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	ResetPassword(ctx context.Context, actorID, id uuid.UUID) (*response.ResetPasswordResponse, error)
}

type staffService struct {
	repo   *repository.Repository
	sink   notify.Sink
	mailer mail.Sender
	config *utils.Config
	log    *zap.Logger
}

func NewStaffService(
	repo *repository.Repository,
	sink notify.Sink,
	mailer mail.Sender,
	config *utils.Config,
	log *zap.Logger,
) StaffService {
	return &staffService{
		repo:   repo,
		sink:   sink,
		mailer: mailer,
		config: config,
		log:    log,
	}
}

func (s *staffService) Create(ctx context.Context, actorID uuid.UUID, req *request.CreateStaffRequest) (*response.CreateStaffResponse, error) {
	email := normalizeEmail(req.Email)

	// 1. Default role staff, validasi kalau dikirim
	role := entity.RoleStaff
	if req.Role != "" {
		role = entity.UserRole(req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
	}

	// 2. Cek email sudah dipakai
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	// 3. Generate temporary password
	temporaryPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		s.log.Error("Failed to generate temporary password", zap.Error(err))
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	hashedPassword, err := utils.HashPassword(temporaryPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	// 4. Create staff member
	now := time.Now()
	staff := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
		IsActive:     true,
		IsFirstLogin: true, // paksa client minta ganti password
	}

	if err := s.repo.User.Create(ctx, staff); err != nil {
		s.log.Error("Failed to create staff", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	s.log.Info("Staff created",
		zap.String("staff_id", staff.ID.String()),
		zap.String("email", staff.Email),
		zap.String("role", string(staff.Role)),
		zap.String("created_by", actorID.String()))

	s.sink.EmitToAll("staff-created", map[string]any{
		"staffId":   staff.ID.String(),
		"name":      staff.Name,
		"email":     staff.Email,
		"role":      staff.Role,
		"createdBy": actorID.String(),
		"timestamp": time.Now(),
	})

	// Welcome email dengan kredensial sementara, fire-and-forget
	go s.sendWelcomeMail(staff.Email, staff.Name, temporaryPassword)

	return &response.CreateStaffResponse{
		Staff:             response.StaffToResponse(staff),
		TemporaryPassword: temporaryPassword,
	}, nil
}

func (s *staffService) List(ctx context.Context, filter repository.StaffFilter) (*response.StaffListResponse, error) {
	users, err := s.repo.User.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list staff", zap.Error(err))
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	resp := response.StaffListToResponse(users)
	return &resp, nil
}

func (s *staffService) Get(ctx context.Context, id uuid.UUID) (*response.StaffResponse, error) {
	staff, err := s.findStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

// Update partial patch: hanya field non-nil yang diubah
func (s *staffService) Update(ctx context.Context, actorID, id uuid.UUID, req *request.UpdateStaffRequest) (*response.StaffResponse, error) {
	staff, err := s.findStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		staff.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != staff.Email {
			existing, err := s.repo.User.FindByEmail(ctx, email)
			if err != nil {
				s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if existing != nil {
				return nil, ErrEmailTaken
			}
			staff.Email = email
		}
	}
	if req.Role != nil {
		role := entity.UserRole(*req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		staff.Role = role
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	staff.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, staff); err != nil {
		s.log.Error("Failed to update staff", zap.Error(err), zap.String("staff_id", id.String()))
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}

	s.log.Info("Staff updated",
		zap.String("staff_id", staff.ID.String()),
		zap.String("updated_by", actorID.String()))

	s.sink.EmitToAll("staff-updated", map[string]any{
		"staffId":   staff.ID.String(),
		"name":      staff.Name,
		"updatedBy": actorID.String(),
		"timestamp": time.Now(),
	})

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

func (s *staffService) SetActive(ctx context.Context, actorID, id uuid.UUID, active bool) error {
	staff, err := s.findStaff(ctx, id)
	if err != nil {
		return err
	}

	staff.IsActive = active
	staff.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, staff); err != nil {
		s.log.Error("Failed to update staff status", zap.Error(err), zap.String("staff_id", id.String()))
		return fmt.Errorf("failed to update staff status: %w", err)
	}

	event := "staff-deactivated"
	actorKey := "deactivatedBy"
	if active {
		event = "staff-reactivated"
		actorKey = "reactivatedBy"
	}

	s.log.Info("Staff status changed",
		zap.String("staff_id", staff.ID.String()),
		zap.Bool("is_active", active),
		zap.String("changed_by", actorID.String()))

	s.sink.EmitToAll(event, map[string]any{
		"staffId":   staff.ID.String(),
		"name":      staff.Name,
		actorKey:    actorID.String(),
		"timestamp": time.Now(),
	})

	return nil
}

func (s *staffService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	staff, err := s.findStaff(ctx, id)
	if err != nil {
		return err
	}

	// Akun admin tidak boleh dihapus permanen
	if staff.Role == entity.RoleAdmin {
		s.log.Warn("Attempt to delete admin account",
			zap.String("staff_id", id.String()),
			zap.String("actor", actorID.String()))
		return ErrAdminDelete
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete staff", zap.Error(err), zap.String("staff_id", id.String()))
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	s.sink.EmitToAll("staff-deleted", map[string]any{
		"staffId":   staff.ID.String(),
		"name":      staff.Name,
		"deletedBy": actorID.String(),
		"timestamp": time.Now(),
	})

	return nil
}

func (s *staffService) ResetPassword(ctx context.Context, actorID, id uuid.UUID) (*response.ResetPasswordResponse, error) {
	staff, err := s.findStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	temporaryPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		s.log.Error("Failed to generate temporary password", zap.Error(err))
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	hashedPassword, err := utils.HashPassword(temporaryPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	staff.PasswordHash = hashedPassword
	staff.IsFirstLogin = true // paksa ganti password di login berikutnya
	staff.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, staff); err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("staff_id", id.String()))
		return nil, fmt.Errorf("failed to reset password: %w", err)
	}

	s.log.Info("Staff password reset",
		zap.String("staff_id", staff.ID.String()),
		zap.String("reset_by", actorID.String()))

	s.sink.EmitToAll("staff-password-reset", map[string]any{
		"staffId":   staff.ID.String(),
		"name":      staff.Name,
		"resetBy":   actorID.String(),
		"timestamp": time.Now(),
	})

	go s.sendResetMail(staff.Email, staff.Name, temporaryPassword)

	return &response.ResetPasswordResponse{TemporaryPassword: temporaryPassword}, nil
}

// ==================== HELPER METHODS ====================

func (s *staffService) findStaff(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	staff, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find staff", zap.Error(err), zap.String("staff_id", id.String()))
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}
	if staff == nil {
		return nil, ErrNotFound
	}
	return staff, nil
}

func (s *staffService) sendWelcomeMail(email, name, temporaryPassword string) {
	err := s.mailer.Send(email, name,
		"Welcome to the POS System",
		mail.WelcomeStaffHTML(name, email, temporaryPassword, s.config.App.ClientURL),
		mail.WelcomeStaffText(name, email, temporaryPassword),
	)
	if err != nil {
		// mail failure tidak pernah menggagalkan operasi pemicunya
		s.log.Warn("Failed to send welcome email", zap.Error(err), zap.String("email", email))
	}
}

func (s *staffService) sendResetMail(email, name, temporaryPassword string) {
	err := s.mailer.Send(email, name,
		"Your POS password has been reset",
		mail.PasswordResetHTML(name, temporaryPassword, s.config.App.ClientURL),
		mail.PasswordResetText(name, temporaryPassword),
	)
	if err != nil {
		s.log.Warn("Failed to send reset email", zap.Error(err), zap.String("email", email))
	}
}
