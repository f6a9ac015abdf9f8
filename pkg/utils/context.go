package utils

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const authContextKey contextKey = "auth_context"

// AuthContext adalah user hasil resolve middleware Authenticate,
// dibawa di request context untuk handler downstream
type AuthContext struct {
	UserID       uuid.UUID
	Email        string
	Name         string
	Role         string
	IsActive     bool
	IsFirstLogin bool
	CreatedAt    time.Time
}

func SetAuthContext(ctx context.Context, auth *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, auth)
}

func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	auth, ok := ctx.Value(authContextKey).(*AuthContext)
	if !ok || auth == nil {
		return nil, false
	}
	return auth, true
}
