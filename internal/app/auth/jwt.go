package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Типы токенов
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims — полезная нагрузка JWT: идентификатор и роль пользователя плюс тип
// токена. Воркфлоу заказов доверяет этим данным и не перепроверяет их.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// JWTService — выпуск и проверка access/refresh токенов
type JWTService struct {
	secret        []byte
	accessExpire  time.Duration
	refreshExpire time.Duration
}

// NewJWTService - создание сервиса JWT
func NewJWTService(secret string, accessExpire, refreshExpire time.Duration) *JWTService {
	return &JWTService{
		secret:        []byte(secret),
		accessExpire:  accessExpire,
		refreshExpire: refreshExpire,
	}
}

// GenerateAccessToken - выпуск access токена
func (s *JWTService) GenerateAccessToken(userID, role string) (string, error) {
	return s.generate(userID, role, TokenTypeAccess, s.accessExpire)
}

// GenerateRefreshToken - выпуск refresh токена
func (s *JWTService) GenerateRefreshToken(userID, role string) (string, error) {
	return s.generate(userID, role, TokenTypeRefresh, s.refreshExpire)
}

func (s *JWTService) generate(userID, role, tokenType string, expire time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken - проверка подписи и срока действия токена
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RefreshTokenPair - выпуск новой пары токенов по refresh токену
func (s *JWTService) RefreshTokenPair(refreshToken string) (string, string, error) {
	claims, err := s.ValidateToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims.Type != TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	access, err := s.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.GenerateRefreshToken(claims.UserID, claims.Role)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
