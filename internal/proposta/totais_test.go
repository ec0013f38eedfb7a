package proposta

import (
	"math"
	"testing"
)

func quase(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRecalcularTotais(t *testing.T) {
	p := &Proposta{
		Produtos: []ProdutoProposta{
			{ValorInstalacao: 1996, ValorMensal: 1578},
			{ValorInstalacao: 350, ValorMensal: 480},
		},
		DescontoVendedor:          true,
		PercentualDescontoDiretor: 20,
	}

	RecalcularTotais(p)

	if p.TotalInstalacao != 2346 {
		t.Errorf("TotalInstalacao = %.2f, esperado 2346", p.TotalInstalacao)
	}
	if p.TotalMensalBase != 2058 {
		t.Errorf("TotalMensalBase = %.2f, esperado 2058", p.TotalMensalBase)
	}
	if !quase(p.TotalMensal, 2058*0.95*0.80) {
		t.Errorf("TotalMensal = %v, esperado %v", p.TotalMensal, 2058*0.95*0.80)
	}
}

func TestRecalcularTotaisSemDesconto(t *testing.T) {
	p := &Proposta{Produtos: []ProdutoProposta{{ValorMensal: 1000}}}
	RecalcularTotais(p)
	if p.TotalMensal != 1000 || p.TotalMensalBase != 1000 {
		t.Errorf("sem desconto os totais deveriam coincidir: %.2f / %.2f", p.TotalMensal, p.TotalMensalBase)
	}
}

func TestDeveGerarNovaVersao(t *testing.T) {
	semDesconto := &Proposta{}
	comVendedor := &Proposta{DescontoVendedor: true}
	comDiretoria := &Proposta{PercentualDescontoDiretor: 10}
	comDiretoriaMaior := &Proposta{PercentualDescontoDiretor: 25}

	casos := []struct {
		nome      string
		atual     *Proposta
		nova      *Proposta
		explicita bool
		esperado  bool
	}{
		{"sem mudança, sem desconto", semDesconto, semDesconto, false, false},
		{"primeira aplicação de desconto de vendedor", semDesconto, comVendedor, false, true},
		{"primeira aplicação de desconto de diretoria", semDesconto, comDiretoria, false, true},
		{"percentual de diretoria alterado", comDiretoria, comDiretoriaMaior, false, true},
		{"desconto removido atualiza no lugar", comVendedor, semDesconto, false, false},
		{"gravação explícita como nova versão", semDesconto, semDesconto, true, true},
		{"mesmo desconto mantido", comVendedor, comVendedor, false, false},
	}

	for _, c := range casos {
		if got := DeveGerarNovaVersao(c.atual, c.nova, c.explicita); got != c.esperado {
			t.Errorf("%s: DeveGerarNovaVersao = %v, esperado %v", c.nome, got, c.esperado)
		}
	}
}
