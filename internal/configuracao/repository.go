package configuracao

import (
	"errors"

	"github.com/nexfibra/api-propostas/internal/tabelas"
	"gorm.io/gorm"
)

// Repository encapsula o ciclo de carga/salvamento das tabelas de
// referência.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Carregar devolve o conjunto de tabelas persistido. Na primeira carga
// semeia os valores comerciais padrão.
func (r *Repository) Carregar() (*tabelas.Tabelas, error) {
	var cfg Configuracao
	err := r.DB.First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = Configuracao{Tabelas: tabelas.Padrao()}
		if err := r.DB.Create(&cfg).Error; err != nil {
			return nil, err
		}
		return &cfg.Tabelas, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg.Tabelas, nil
}

// Salvar substitui o conjunto de tabelas persistido.
func (r *Repository) Salvar(t *tabelas.Tabelas) error {
	var cfg Configuracao
	err := r.DB.First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = Configuracao{Tabelas: *t}
		return r.DB.Create(&cfg).Error
	}
	if err != nil {
		return err
	}
	cfg.Tabelas = *t
	return r.DB.Save(&cfg).Error
}
