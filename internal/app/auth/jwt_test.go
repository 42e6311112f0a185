package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute, 24*time.Hour)
	other := NewJWTService("another-secret", 15*time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute, 24*time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestRefreshTokenPair(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute, 24*time.Hour)

	refresh, err := svc.GenerateRefreshToken("user-1", "user")
	require.NoError(t, err)

	access, newRefresh, err := svc.RefreshTokenPair(refresh)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, "user-1", claims.UserID)

	claims, err = svc.ValidateToken(newRefresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestRefreshTokenPairRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute, 24*time.Hour)

	access, err := svc.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, _, err = svc.RefreshTokenPair(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
