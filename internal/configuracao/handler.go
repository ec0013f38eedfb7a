package configuracao

import (
	"encoding/json"
	"net/http"

	"github.com/nexfibra/api-propostas/internal/tabelas"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de configuração de tabelas e alíquotas.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Obter trata GET /configuracoes
func (h *Handler) Obter(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repo.Carregar()
	if err != nil {
		http.Error(w, "erro ao carregar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// Atualizar trata PUT /configuracoes (somente administradores; a
// restrição é aplicada pelo middleware na rota)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var t tabelas.Tabelas
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Salvar(&t); err != nil {
		http.Error(w, "erro ao salvar configurações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}
