package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
)

func TestRegisterAndLogin(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, newTestJWTService())

	resp, err := svc.Register(RegisterRequest{
		Name:     "Петров",
		Tel:      "+79990001122",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, ds.RoleUser, resp.User.Role)
	assert.Empty(t, resp.User.Password)
	assert.NotEmpty(t, resp.User.ID)

	login, err := svc.Login(LoginRequest{Tel: "+79990001122", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateTel(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, newTestJWTService())

	req := RegisterRequest{Name: "Петров", Tel: "+79990001122", Password: "secret123"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrTelAlreadyRegistered)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, newTestJWTService())

	_, err := svc.Register(RegisterRequest{Name: "Петров", Tel: "+79990001122", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(LoginRequest{Tel: "+79990001122", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginRequest{Tel: "+70000000000", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokens(t *testing.T) {
	repo := newTestRepo(t)
	jwtService := newTestJWTService()
	svc := NewAuthService(repo, jwtService)

	resp, err := svc.Register(RegisterRequest{Name: "Петров", Tel: "+79990001122", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	// Access токен нельзя использовать как refresh
	_, err = svc.RefreshTokens(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdatePassword(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, newTestJWTService())

	resp, err := svc.Register(RegisterRequest{Name: "Петров", Tel: "+79990001122", Password: "secret123"})
	require.NoError(t, err)

	err = svc.UpdatePassword(resp.User.ID, "wrong", "newsecret")
	assert.ErrorIs(t, err, ErrInvalidOldPassword)

	require.NoError(t, svc.UpdatePassword(resp.User.ID, "secret123", "newsecret"))

	_, err = svc.Login(LoginRequest{Tel: "+79990001122", Password: "newsecret"})
	assert.NoError(t, err)
	_, err = svc.Login(LoginRequest{Tel: "+79990001122", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteUser(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, newTestJWTService())

	resp, err := svc.Register(RegisterRequest{Name: "Петров", Tel: "+79990001122", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(resp.User.ID))

	// Удалённый пользователь не может войти
	_, err = svc.Login(LoginRequest{Tel: "+79990001122", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Телефон освобождается для повторной регистрации
	_, err = svc.Register(RegisterRequest{Name: "Петров", Tel: "+79990001122", Password: "secret123"})
	assert.NoError(t, err)
}

func TestDeleteUserNotFound(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, newTestJWTService())

	err := svc.DeleteUser("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ds.ErrNotFound)
}

func TestDeleteAdminForbidden(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, newTestJWTService())

	admin, err := svc.CreateAdmin("admin", "+70000000001", "secret123")
	require.NoError(t, err)
	assert.Equal(t, ds.RoleAdmin, admin.Role)

	err = svc.DeleteUser(admin.ID)
	assert.ErrorIs(t, err, ds.ErrForbidden)
}

func TestCreateAdminDuplicateTel(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewAuthService(repo, newTestJWTService())

	_, err := svc.CreateAdmin("admin", "+70000000001", "secret123")
	require.NoError(t, err)

	_, err = svc.CreateAdmin("admin2", "+70000000001", "secret123")
	assert.ErrorIs(t, err, ErrTelAlreadyRegistered)
}
