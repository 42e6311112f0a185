package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config — настройки сервиса из переменных окружения (префикс ERP_).
type Config struct {
	ServiceHost           string        `envconfig:"SERVICE_HOST" default:"0.0.0.0"`
	ServicePort           int           `envconfig:"SERVICE_PORT" default:"8080"`
	JWTSecret             string        `envconfig:"JWT_SECRET" required:"true"`
	JWTAccessTokenExpire  time.Duration `envconfig:"JWT_ACCESS_TOKEN_EXPIRE" default:"15m"`
	JWTRefreshTokenExpire time.Duration `envconfig:"JWT_REFRESH_TOKEN_EXPIRE" default:"168h"`
}

// NewConfig - загрузка конфигурации из окружения
func NewConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("erp", &c); err != nil {
		return nil, errors.Wrap(err, "process environment config")
	}
	return &c, nil
}
