package usecase

import (
	"context"
	"testing"

	"pos-backend/internal/data/entity"
	"pos-backend/internal/dto/request"
	"pos-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	svc, repo, _ := newTestServices(t)
	ctx := context.Background()

	resp, err := svc.Auth.Register(ctx, &request.RegisterRequest{
		Email:    "A@X.com ",
		Password: "secret1",
		Name:     "Alice",
	})
	require.NoError(t, err)

	// email dinormalisasi, role default staff
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, entity.RoleStaff, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// hash tersimpan, bukan plaintext
	stored, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret1", stored.PasswordHash))
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, resp.RefreshToken, *stored.RefreshToken)

	// email duplikat ditolak
	_, err = svc.Auth.Register(ctx, &request.RegisterRequest{
		Email:    "a@x.com",
		Password: "another",
		Name:     "Alice 2",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, repo, _ := newTestServices(t)
	ctx := context.Background()

	seedUser(t, repo, "a@x.com", "secret1", "Alice", entity.RoleStaff, true)

	resp, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	svc, repo, _ := newTestServices(t)
	ctx := context.Background()

	seedUser(t, repo, "a@x.com", "secret1", "Alice", entity.RoleStaff, true)

	// password salah dan email tidak dikenal menghasilkan error identik
	_, errWrongPassword := svc.Auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "wrong"})
	_, errUnknownEmail := svc.Auth.Login(ctx, &request.LoginRequest{Email: "nobody@x.com", Password: "secret1"})

	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	svc, repo, _ := newTestServices(t)
	ctx := context.Background()

	seedUser(t, repo, "a@x.com", "secret1", "Alice", entity.RoleStaff, false)

	_, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestRefresh_Rotation(t *testing.T) {
	svc, repo, _ := newTestServices(t)
	ctx := context.Background()

	seedUser(t, repo, "a@x.com", "secret1", "Alice", entity.RoleStaff, true)

	login, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	refreshed, err := svc.Auth.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// token lama sudah dirotasi, permanen mati walau belum expired
	_, err = svc.Auth.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// token baru masih jalan
	_, err = svc.Auth.Refresh(ctx, refreshed.RefreshToken)
	require.NoError(t, err)
}

func TestRefresh_Garbage(t *testing.T) {
	svc, _, _ := newTestServices(t)

	_, err := svc.Auth.Refresh(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestDoubleLogin_InvalidatesFirstSession(t *testing.T) {
	svc, repo, _ := newTestServices(t)
	ctx := context.Background()

	seedUser(t, repo, "a@x.com", "secret1", "Alice", entity.RoleStaff, true)

	first, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	second, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// login kedua menimpa refresh token pertama: single active session
	_, err = svc.Auth.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = svc.Auth.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)
}

func TestLogout(t *testing.T) {
	svc, repo, _ := newTestServices(t)
	ctx := context.Background()

	user := seedUser(t, repo, "a@x.com", "secret1", "Alice", entity.RoleStaff, true)

	login, err := svc.Auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	auth := &utils.AuthContext{UserID: user.ID, Name: user.Name}
	require.NoError(t, svc.Auth.Logout(ctx, auth))

	// refresh setelah logout selalu gagal
	_, err = svc.Auth.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// idempotent: logout lagi tetap sukses, tanpa user juga sukses
	require.NoError(t, svc.Auth.Logout(ctx, auth))
	require.NoError(t, svc.Auth.Logout(ctx, nil))
}
