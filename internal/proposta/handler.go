package proposta

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de propostas
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Criar trata POST /propostas. Aceita tanto o formato canônico quanto o
// formato frouxo do sistema antigo; tudo passa pela normalização.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p := NormalizarProposta(raw)
	p.Codigo = uuid.NewString()
	p.Versao = 1
	RecalcularTotais(p)

	if err := h.Repo.Create(p); err != nil {
		http.Error(w, "erro ao criar proposta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// Listar trata GET /propostas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao buscar propostas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /propostas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "proposta não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// ListarVersoes trata GET /propostas/{id}/versoes — todas as versões que
// compartilham o código da proposta informada.
func (h *Handler) ListarVersoes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "proposta não encontrada", http.StatusNotFound)
		return
	}
	versoes, err := h.Repo.FindByCodigo(p.Codigo)
	if err != nil {
		http.Error(w, "erro ao buscar versões", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(versoes)
}

// Atualizar trata PUT /propostas/{id}. A versão 1 sem desconto é
// atualizada no lugar; a primeira aplicação (ou mudança) de desconto, ou
// o query param novaVersao=true, bifurca uma nova versão sob o mesmo
// código.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	atual, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "proposta não encontrada", http.StatusNotFound)
		return
	}

	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	nova := NormalizarProposta(raw)
	RecalcularTotais(nova)

	explicita := r.URL.Query().Get("novaVersao") == "true"
	if DeveGerarNovaVersao(atual, nova, explicita) {
		nova.Codigo = atual.Codigo
		nova.Versao = atual.Versao + 1
		if err := h.Repo.Create(nova); err != nil {
			http.Error(w, "erro ao criar nova versão", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(nova)
		return
	}

	nova.ID = atual.ID
	nova.Codigo = atual.Codigo
	nova.Versao = atual.Versao
	nova.CreatedAt = atual.CreatedAt
	if err := h.Repo.Update(nova); err != nil {
		http.Error(w, "erro ao atualizar proposta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nova)
}

// Deletar trata DELETE /propostas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "proposta não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(p); err != nil {
		http.Error(w, "erro ao deletar proposta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
