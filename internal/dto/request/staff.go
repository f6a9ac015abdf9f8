package request

type CreateStaffRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=staff admin"`
}

// UpdateStaffRequest partial patch: hanya field non-nil yang diubah
type UpdateStaffRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=staff admin"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type StaffListQuery struct {
	Role   string `json:"role"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive all"`
	Search string `json:"search"`
}
