package configuracao

import (
	"time"

	"github.com/nexfibra/api-propostas/internal/tabelas"
	"gorm.io/gorm"
)

// Configuracao é a linha única que guarda as tabelas de referência
// editáveis (planos, comissões, descontos de prazo, alíquotas e
// premissas) em JSONB. Os calculadores recebem o conjunto carregado por
// injeção; nunca leem o banco diretamente.
type Configuracao struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Tabelas   tabelas.Tabelas `gorm:"type:jsonb;serializer:json" json:"tabelas"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Configuracao{})
}
