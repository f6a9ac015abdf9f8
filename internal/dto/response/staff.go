package response

import (
	"time"

	"pos-backend/internal/data/entity"
)

type StaffResponse struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Role         entity.UserRole `json:"role"`
	IsActive     bool            `json:"isActive"`
	IsFirstLogin bool            `json:"isFirstLogin"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type CreateStaffResponse struct {
	Staff StaffResponse `json:"staff"`
	// Dikirim sekali saja - admin yang share ke staff
	TemporaryPassword string `json:"temporaryPassword"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}

type ResetPasswordResponse struct {
	TemporaryPassword string `json:"temporaryPassword"`
}

func StaffToResponse(user *entity.User) StaffResponse {
	return StaffResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		IsActive:     user.IsActive,
		IsFirstLogin: user.IsFirstLogin,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func StaffListToResponse(users []*entity.User) StaffListResponse {
	staff := make([]StaffResponse, 0, len(users))
	for _, u := range users {
		staff = append(staff, StaffToResponse(u))
	}
	return StaffListResponse{Staff: staff, Total: len(staff)}
}
