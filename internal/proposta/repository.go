package proposta

import "gorm.io/gorm"

// Repository encapsula operações de banco para Proposta
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova proposta com seus produtos
func (r *Repository) Create(p *Proposta) error {
	return r.DB.Create(p).Error
}

// FindByID retorna uma proposta pelo ID, com os produtos
func (r *Repository) FindByID(id uint) (*Proposta, error) {
	var p Proposta
	if err := r.DB.Preload("Produtos").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll retorna todas as propostas, com os produtos
func (r *Repository) ListAll() ([]Proposta, error) {
	var list []Proposta
	err := r.DB.Preload("Produtos").Order("created_at DESC").Find(&list).Error
	return list, err
}

// FindByCodigo retorna todas as versões de uma proposta, da mais antiga
// para a mais recente
func (r *Repository) FindByCodigo(codigo string) ([]Proposta, error) {
	var list []Proposta
	err := r.DB.Preload("Produtos").Where("codigo = ?", codigo).Order("versao ASC").Find(&list).Error
	return list, err
}

// Update substitui a proposta e seus produtos em uma transação: os
// produtos antigos saem e a lista nova entra inteira.
func (r *Repository) Update(p *Proposta) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposta_id = ?", p.ID).Delete(&ProdutoProposta{}).Error; err != nil {
			return err
		}
		for i := range p.Produtos {
			p.Produtos[i].ID = 0
			p.Produtos[i].PropostaID = p.ID
		}
		return tx.Save(p).Error
	})
}

// Delete remove uma proposta (soft delete)
func (r *Repository) Delete(p *Proposta) error {
	return r.DB.Delete(p).Error
}
