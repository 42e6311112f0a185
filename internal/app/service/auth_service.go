package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/a957924278/mogutouERP-go/internal/app/auth"
	"github.com/a957924278/mogutouERP-go/internal/app/ds"
	"github.com/a957924278/mogutouERP-go/internal/app/repository"
)

// Ошибки авторизации
var (
	ErrTelAlreadyRegistered = errors.New("user with this telephone already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidOldPassword   = errors.New("old password is incorrect")
)

// AuthService - сервис авторизации
type AuthService struct {
	repo       *repository.Repository
	jwtService *auth.JWTService
}

// NewAuthService - создание нового сервиса авторизации
func NewAuthService(repo *repository.Repository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		repo:       repo,
		jwtService: jwtService,
	}
}

// RegisterRequest - запрос на регистрацию
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Tel      string `json:"tel" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest - запрос на вход
type LoginRequest struct {
	Tel      string `json:"tel" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse - ответ авторизации
type AuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         ds.User   `json:"user"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Register - регистрация пользователя (роль всегда user)
func (s *AuthService) Register(req RegisterRequest) (*AuthResponse, error) {
	// Телефон должен быть уникален среди активных пользователей
	if _, err := s.repo.GetUserByTel(req.Tel); err == nil {
		return nil, ErrTelAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := ds.User{
		Name:     req.Name,
		Tel:      req.Tel,
		Password: string(hashed),
		Role:     ds.RoleUser,
	}
	if err := s.repo.CreateUser(&user); err != nil {
		return nil, err
	}

	return s.tokenPair(user)
}

// Login - вход пользователя по телефону и паролю
func (s *AuthService) Login(req LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByTel(req.Tel)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair(user)
}

// RefreshTokens - обновление пары токенов
func (s *AuthService) RefreshTokens(refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.Type != auth.TokenTypeRefresh {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetUser(claims.UserID)
	if err != nil {
		return nil, ds.ErrNotFound
	}

	accessToken, newRefreshToken, err := s.jwtService.RefreshTokenPair(refreshToken)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}, nil
}

// UpdatePassword - смена пароля пользователя
func (s *AuthService) UpdatePassword(userID, oldPassword, newPassword string) error {
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.repo.UpdateUser(&user)
}

// DeleteUser - мягкое удаление пользователя; администраторов удалять нельзя
func (s *AuthService) DeleteUser(userID string) error {
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return err
	}

	if user.IsAdmin() {
		return ds.ErrForbidden
	}

	return s.repo.DeleteUser(userID)
}

// CreateAdmin - создание администратора (CLI, не доступно через HTTP)
func (s *AuthService) CreateAdmin(name, tel, password string) (ds.User, error) {
	if _, err := s.repo.GetUserByTel(tel); err == nil {
		return ds.User{}, ErrTelAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ds.User{}, err
	}

	user := ds.User{
		Name:     name,
		Tel:      tel,
		Password: string(hashed),
		Role:     ds.RoleAdmin,
	}
	if err := s.repo.CreateUser(&user); err != nil {
		return ds.User{}, err
	}

	user.Password = ""
	return user, nil
}

// tokenPair - выпуск access+refresh токенов для пользователя
func (s *AuthService) tokenPair(user ds.User) (*AuthResponse, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	// Убираем хеш пароля из ответа
	user.Password = ""

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}, nil
}
