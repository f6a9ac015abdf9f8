package usecase

import "errors"

// Expected failures dipetakan ke status code di handler boundary lewat
// errors.Is. Error lain dianggap internal dan jadi 500 generik.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrEmailTaken          = errors.New("user already exists with this email")
	ErrNotFound            = errors.New("staff member not found")
	ErrAccountDeactivated  = errors.New("account is deactivated")
	ErrAdminDelete         = errors.New("cannot delete admin accounts")
	ErrInvalidRole         = errors.New("invalid role, must be 'staff' or 'admin'")
)
