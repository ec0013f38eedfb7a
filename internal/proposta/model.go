package proposta

import (
	"time"

	"gorm.io/gorm"
)

// ProdutoProposta é um item precificado de uma proposta. Detalhes guarda
// a configuração e o resultado do calculador em JSONB, opacos para o
// CRUD; o motor de cálculo só os consome depois de normalizados.
type ProdutoProposta struct {
	ID              uint                   `gorm:"primaryKey" json:"id"`
	PropostaID      uint                   `gorm:"not null;index" json:"propostaId"`
	Tipo            string                 `gorm:"size:50;not null" json:"tipo"` // "radio" ou "vm"
	Descricao       string                 `json:"descricao"`
	ValorInstalacao float64                `gorm:"not null;default:0" json:"valorInstalacao"`
	ValorMensal     float64                `gorm:"not null;default:0" json:"valorMensal"`
	Detalhes        map[string]interface{} `gorm:"type:jsonb;serializer:json" json:"detalhes"`
}

// Proposta agrega os dados do cliente, do gerente de contas e a lista
// ordenada de produtos precificados, com os totais no topo.
//
// Ciclo de versões: criada na primeira gravação; a versão 1 (sem
// desconto) é atualizada no lugar; a primeira aplicação ou mudança de
// desconto, ou uma gravação explícita como nova versão, cria uma nova
// linha com versão+1 sob o mesmo código.
type Proposta struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Codigo string `gorm:"size:36;index" json:"codigo"` // agrupa as versões de uma mesma proposta
	Versao int    `gorm:"not null;default:1" json:"versao"`

	ClienteNome    string `json:"clienteNome"`
	ClienteCNPJ    string `json:"clienteCnpj"`
	ClienteContato string `json:"clienteContato"`
	GerenteContas  string `json:"gerenteContas"`

	Produtos []ProdutoProposta `gorm:"foreignKey:PropostaID;constraint:OnDelete:CASCADE" json:"produtos"`

	TotalInstalacao float64 `gorm:"not null;default:0" json:"totalInstalacao"`
	TotalMensalBase float64 `gorm:"not null;default:0" json:"totalMensalBase"`
	TotalMensal     float64 `gorm:"not null;default:0" json:"totalMensal"`

	DescontoVendedor          bool    `json:"descontoVendedor"`
	PercentualDescontoDiretor float64 `json:"percentualDescontoDiretor"`
}

// Migrate cria as tabelas no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Proposta{}, &ProdutoProposta{})
}
