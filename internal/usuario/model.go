package usuario

import "gorm.io/gorm"

// Usuario representa um gerente de contas (vendedor) do revendedor.
// Administradores podem editar as tabelas de preço e alíquotas.
type Usuario struct {
	gorm.Model
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email" gorm:"unique"`
	Telefone  string `json:"telefone"`
	Senha     string `json:"-"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
