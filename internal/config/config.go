package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config concentra toda a configuração do serviço, lida do ambiente.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost           string `env:"DB_HOST" envDefault:"localhost"`
	DBPort           int    `env:"DB_PORT" envDefault:"5432"`
	DBUser           string `env:"DB_USER" envDefault:"postgres"`
	DBPassword       string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName           string `env:"DB_NAME" envDefault:"propostas"`
	DBSSLModeDisable bool   `env:"DB_SSL_MODE_DISABLE" envDefault:"true"`

	JWTSecret string `env:"JWT_SECRET,required"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load lê e valida a configuração a partir das variáveis de ambiente.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}
	return &cfg, nil
}
