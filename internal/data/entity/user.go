package entity

type UserRole string

const (
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleStaff || r == RoleAdmin
}

// User adalah akun staff/admin POS. PasswordHash dan RefreshToken tidak
// pernah ikut di response JSON.
type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Name         string   `db:"name"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
	IsFirstLogin bool     `db:"is_first_login"`
	RefreshToken *string  `db:"refresh_token"`
}
