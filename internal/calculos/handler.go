// Package calculos expõe o motor de precificação por HTTP: a interface
// envia a configuração do produto e recebe o resultado precificado,
// calculado sobre as tabelas persistidas.
package calculos

import (
	"encoding/json"
	"net/http"

	"github.com/nexfibra/api-propostas/internal/configuracao"
	"github.com/nexfibra/api-propostas/internal/precificacao"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de cálculo
type Handler struct {
	Config *configuracao.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Config: configuracao.NewRepository(db)}
}

// CalcularRadio trata POST /calculos/radio
func (h *Handler) CalcularRadio(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var cfg precificacao.ConfiguracaoRadio
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	t, err := h.Config.Carregar()
	if err != nil {
		http.Error(w, "erro ao carregar tabelas", http.StatusInternalServerError)
		return
	}

	resultado := precificacao.CalcularRadio(t, cfg)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}

// CalcularVM trata POST /calculos/vm
func (h *Handler) CalcularVM(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var cfg precificacao.ConfiguracaoVM
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	t, err := h.Config.Carregar()
	if err != nil {
		http.Error(w, "erro ao carregar tabelas", http.StatusInternalServerError)
		return
	}

	resultado := precificacao.CalcularVM(t, cfg)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}
