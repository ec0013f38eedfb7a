package proposta

import (
	"encoding/json"
	"testing"
)

func decodificar(t *testing.T, payload string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("payload de teste inválido: %v", err)
	}
	return raw
}

func TestNormalizarPropostaClienteComoString(t *testing.T) {
	raw := decodificar(t, `{"cliente": "Padaria Central LTDA"}`)
	p := NormalizarProposta(raw)
	if p.ClienteNome != "Padaria Central LTDA" {
		t.Errorf("ClienteNome = %q", p.ClienteNome)
	}
}

func TestNormalizarPropostaClienteComoObjeto(t *testing.T) {
	raw := decodificar(t, `{
		"clientData": {"name": "Padaria Central LTDA", "cnpj": "12.345.678/0001-00", "contact": "financeiro@padaria.com"}
	}`)
	p := NormalizarProposta(raw)
	if p.ClienteNome != "Padaria Central LTDA" {
		t.Errorf("ClienteNome = %q", p.ClienteNome)
	}
	if p.ClienteCNPJ != "12.345.678/0001-00" {
		t.Errorf("ClienteCNPJ = %q", p.ClienteCNPJ)
	}
	if p.ClienteContato != "financeiro@padaria.com" {
		t.Errorf("ClienteContato = %q", p.ClienteContato)
	}
}

// Propostas antigas guardam os produtos sob "items" com apelidos em
// inglês; tudo precisa chegar canônico do outro lado.
func TestNormalizarPropostaProdutosSobItems(t *testing.T) {
	raw := decodificar(t, `{
		"client": "ACME",
		"accountManager": {"name": "Paula Souza"},
		"items": [
			{"type": "radio", "setup": 1996, "monthly": 1578, "details": {"velocidade": 100}},
			{"type": "vm", "setup": 350, "monthly": 480}
		],
		"applySalespersonDiscount": true,
		"appliedDirectorDiscountPercentage": 10,
		"version": 3
	}`)

	p := NormalizarProposta(raw)

	if p.GerenteContas != "Paula Souza" {
		t.Errorf("GerenteContas = %q", p.GerenteContas)
	}
	if len(p.Produtos) != 2 {
		t.Fatalf("esperado 2 produtos, veio %d", len(p.Produtos))
	}
	if p.Produtos[0].Tipo != "radio" || p.Produtos[0].ValorInstalacao != 1996 || p.Produtos[0].ValorMensal != 1578 {
		t.Errorf("produto 0 mal normalizado: %+v", p.Produtos[0])
	}
	if p.Produtos[0].Detalhes["velocidade"] != float64(100) {
		t.Errorf("detalhes não preservados: %+v", p.Produtos[0].Detalhes)
	}
	if !p.DescontoVendedor || p.PercentualDescontoDiretor != 10 {
		t.Errorf("flags de desconto mal normalizadas: %v / %.2f", p.DescontoVendedor, p.PercentualDescontoDiretor)
	}
	if p.Versao != 3 {
		t.Errorf("Versao = %d, esperado 3", p.Versao)
	}
}

func TestNormalizarPropostaFormatoCanonico(t *testing.T) {
	raw := decodificar(t, `{
		"cliente": {"nome": "ACME"},
		"gerenteContas": "Paula Souza",
		"produtos": [{"tipo": "radio", "valorInstalacao": 1996, "valorMensal": 1578}],
		"descontoVendedor": false,
		"percentualDescontoDiretor": 0
	}`)

	p := NormalizarProposta(raw)
	if p.ClienteNome != "ACME" || p.GerenteContas != "Paula Souza" {
		t.Errorf("cabeçalho mal normalizado: %+v", p)
	}
	if len(p.Produtos) != 1 || p.Produtos[0].ValorMensal != 1578 {
		t.Errorf("produtos mal normalizados: %+v", p.Produtos)
	}
}

// A fronteira limita o percentual de diretoria a [0,100]; o motor não
// valida faixa.
func TestNormalizarPropostaLimitaDescontoDiretoria(t *testing.T) {
	p := NormalizarProposta(decodificar(t, `{"percentualDescontoDiretor": 150}`))
	if p.PercentualDescontoDiretor != 100 {
		t.Errorf("percentual = %.2f, esperado 100", p.PercentualDescontoDiretor)
	}
	p = NormalizarProposta(decodificar(t, `{"percentualDescontoDiretor": -5}`))
	if p.PercentualDescontoDiretor != 0 {
		t.Errorf("percentual = %.2f, esperado 0", p.PercentualDescontoDiretor)
	}
}

func TestNormalizarPropostaPayloadVazio(t *testing.T) {
	p := NormalizarProposta(map[string]interface{}{})
	if p == nil {
		t.Fatal("payload vazio deveria virar proposta zerada, não nil")
	}
	if len(p.Produtos) != 0 || p.ClienteNome != "" {
		t.Errorf("proposta deveria estar zerada: %+v", p)
	}
}
