package response

import (
	"time"

	"pos-backend/internal/data/entity"
	"pos-backend/pkg/utils"
)

// UserResponse adalah field publik user, tanpa password hash / refresh token
type UserResponse struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  entity.UserRole `json:"role"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type ProfileResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	IsFirstLogin bool      `json:"isFirstLogin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Helper converters

func AuthToResponse(user *entity.User, accessToken, refreshToken string) *AuthResponse {
	return &AuthResponse{
		User: UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}

func ProfileToResponse(auth *utils.AuthContext) ProfileResponse {
	return ProfileResponse{
		ID:           auth.UserID.String(),
		Email:        auth.Email,
		Name:         auth.Name,
		Role:         auth.Role,
		IsActive:     auth.IsActive,
		IsFirstLogin: auth.IsFirstLogin,
		CreatedAt:    auth.CreatedAt,
	}
}
