package db

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config agrupa os parâmetros de conexão com o PostgreSQL.
type Config struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLModeDisable bool
}

// Conectar abre a conexão com o banco, com novas tentativas em backoff
// exponencial por até 30s — o banco pode subir depois da API.
func Conectar(cfg Config) (*gorm.DB, error) {
	var sslMode string
	if cfg.SSLModeDisable {
		sslMode = " sslmode=disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, sslMode)

	var database *gorm.DB
	operacao := func() error {
		var err error
		database, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})
		return err
	}

	politica := backoff.NewExponentialBackOff()
	politica.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(operacao, politica); err != nil {
		return nil, fmt.Errorf("erro ao conectar no banco: %w", err)
	}
	return database, nil
}
