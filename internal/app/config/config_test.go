package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("ERP_JWT_SECRET", "test-secret")

	c, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", c.ServiceHost)
	assert.Equal(t, 8080, c.ServicePort)
	assert.Equal(t, "test-secret", c.JWTSecret)
	assert.Equal(t, 15*time.Minute, c.JWTAccessTokenExpire)
	assert.Equal(t, 168*time.Hour, c.JWTRefreshTokenExpire)
}

func TestNewConfigMissingSecret(t *testing.T) {
	// t.Setenv регистрирует восстановление исходного значения, сам тест
	// проверяет полностью отсутствующую переменную
	t.Setenv("ERP_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("ERP_JWT_SECRET"))
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := NewConfig()
	assert.Error(t, err)
}
