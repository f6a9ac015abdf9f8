package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"pos-backend/internal/data/entity"
	"pos-backend/internal/data/repository"
	"pos-backend/internal/mail"
	"pos-backend/internal/notify"
	"pos-backend/pkg/token"
	"pos-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserRepo in-memory UserRepository untuk test usecase
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := *user
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	u := *user
	return &u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			u := *user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, filter repository.StaffFilter) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var users []*entity.User
	for _, user := range f.users {
		if filter.Role != "" && filter.Role != "all" && string(user.Role) != filter.Role {
			continue
		}
		if filter.Status == "active" && !user.IsActive {
			continue
		}
		if filter.Status == "inactive" && user.IsActive {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(user.Name), s) &&
				!strings.Contains(strings.ToLower(user.Email), s) {
				continue
			}
		}
		u := *user
		users = append(users, &u)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return nil
	}
	u := *user
	u.RefreshToken = stored.RefreshToken
	f.users[user.ID] = &u
	return nil
}

func (f *fakeUserRepo) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil
	}
	if refreshToken == nil {
		user.RefreshToken = nil
	} else {
		rt := *refreshToken
		user.RefreshToken = &rt
	}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

// ==================== TEST SETUP ====================

func newTestServices(t *testing.T) (*Service, *fakeUserRepo, *token.Service) {
	t.Helper()

	repo := &repository.Repository{User: newFakeUserRepo()}
	tokens := token.NewService("test-access", "test-refresh", 15*time.Minute, 7*24*time.Hour)
	config := &utils.Config{}

	svc := NewService(repo, tokens, notify.NopSink{}, mail.Discard{}, config, zap.NewNop())
	return svc, repo.User.(*fakeUserRepo), tokens
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, name string, role entity.UserRole, active bool) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}
