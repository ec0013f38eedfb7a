package dre

import (
	"math"
	"testing"

	"github.com/nexfibra/api-propostas/internal/tabelas"
)

func quase(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func entradaRadio(t *tabelas.Tabelas, velocidade, prazo int) Entrada {
	return Entrada{
		Plano:             t.PlanoPorVelocidade(velocidade),
		PrazoSelecionado:  prazo,
		IncluirInstalacao: true,
	}
}

func TestMontarCobreTodosOsPrazos(t *testing.T) {
	tab := tabelas.Padrao()
	quadro := Montar(&tab, entradaRadio(&tab, 100, 24))

	for _, prazo := range tabelas.PrazosPadrao {
		if _, ok := quadro[prazo]; !ok {
			t.Errorf("DRE sem o período de %d meses", prazo)
		}
	}
	if len(quadro) != len(tabelas.PrazosPadrao) {
		t.Errorf("DRE com %d períodos, esperado %d", len(quadro), len(tabelas.PrazosPadrao))
	}
}

// Todos os períodos usam o preço do prazo selecionado, não o preço do
// prazo do período: "e se este negócio rodasse N meses ao preço de hoje".
func TestMontarUsaPrecoDoPrazoSelecionado(t *testing.T) {
	tab := tabelas.Padrao()
	quadro := Montar(&tab, entradaRadio(&tab, 100, 24))

	for _, prazo := range tabelas.PrazosPadrao {
		p := quadro[prazo]
		if p.Mensalidade != 1578 {
			t.Errorf("período %d: mensalidade %.2f, esperado 1578 (preço do prazo selecionado)", prazo, p.Mensalidade)
		}
		if !quase(p.ReceitaTotal, 1578*float64(prazo)) {
			t.Errorf("período %d: receita total %.2f, esperado %.2f", prazo, p.ReceitaTotal, 1578*float64(prazo))
		}
	}
}

func TestMontarConsistenciaInterna(t *testing.T) {
	tab := tabelas.Padrao()
	e := entradaRadio(&tab, 100, 24)
	e.TemIndicacao = true
	quadro := Montar(&tab, e)

	for prazo, p := range quadro {
		if p.MargemPercentual != p.MarkupPercentual || p.MargemPercentual != p.Lucratividade {
			t.Errorf("período %d: margem, markup e lucratividade deveriam ser idênticos", prazo)
		}
		if !quase(p.ReceitaPrimeiroPeriodo, p.ReceitaTotal+p.ReceitaInstalacao) {
			t.Errorf("período %d: receita do primeiro período inconsistente", prazo)
		}
		saldo := p.ReceitaPrimeiroPeriodo - p.CustoBanda - p.CustoEquipamento -
			p.SimplesNacional - p.Comissoes.Total - p.CustoDespesa
		if !quase(p.Saldo, saldo) {
			t.Errorf("período %d: saldo %.6f não bate com as linhas do DRE (%.6f)", prazo, p.Saldo, saldo)
		}
		if !quase(p.MargemPercentual, p.Saldo/p.ReceitaPrimeiroPeriodo*100) {
			t.Errorf("período %d: margem inconsistente com saldo/receita", prazo)
		}
	}
}

func TestMontarLinhasDeCusto(t *testing.T) {
	tab := tabelas.Padrao()
	quadro := Montar(&tab, entradaRadio(&tab, 100, 24))

	p := quadro[12]
	// banda = velocidade × R$/Mbps × meses
	if !quase(p.CustoBanda, 100*1.50*12) {
		t.Errorf("custo de banda = %.2f, esperado %.2f", p.CustoBanda, 100*1.50*12)
	}
	if !quase(p.SimplesNacional, p.ReceitaPrimeiroPeriodo*0.15) {
		t.Errorf("Simples Nacional = %.2f, esperado 15%% da receita", p.SimplesNacional)
	}
	// custo/despesa do DRE é fixo em 10%, independente da alíquota editável
	if !quase(p.CustoDespesa, p.ReceitaPrimeiroPeriodo*0.10) {
		t.Errorf("custo/despesa = %.2f, esperado 10%% da receita", p.CustoDespesa)
	}
	if p.CustoEquipamento != 6700 {
		t.Errorf("custo de equipamento = %.2f, esperado 6700", p.CustoEquipamento)
	}
}

func TestMontarCustoDespesaIgnoraAliquotaEditavel(t *testing.T) {
	tab := tabelas.Padrao()
	tab.Aliquotas.CustoDespesa = 37 // alterada pelo admin; o DRE segue com 10%
	quadro := Montar(&tab, entradaRadio(&tab, 100, 24))

	p := quadro[24]
	if !quase(p.CustoDespesa, p.ReceitaPrimeiroPeriodo*0.10) {
		t.Errorf("custo/despesa deveria continuar em 10%%, veio %.2f", p.CustoDespesa)
	}
}

// Sem plano selecionado o painel degrada para as premissas padrão em vez
// de falhar.
func TestMontarSemPlanoUsaPremissas(t *testing.T) {
	tab := tabelas.Padrao()
	quadro := Montar(&tab, Entrada{PrazoSelecionado: 24, IncluirInstalacao: true})

	p := quadro[24]
	if p.Mensalidade != 600 {
		t.Errorf("mensalidade = %.2f, esperado a premissa padrão 600", p.Mensalidade)
	}
	if p.ReceitaInstalacao != 2500 {
		t.Errorf("instalação = %.2f, esperado a premissa padrão 2500", p.ReceitaInstalacao)
	}
	if p.CustoEquipamento != 7000 {
		t.Errorf("equipamento = %.2f, esperado a premissa padrão 7000", p.CustoEquipamento)
	}
	if p.CustoBanda != 0 {
		t.Errorf("sem velocidade o custo de banda deveria ser 0, veio %.2f", p.CustoBanda)
	}
}

func TestMontarVMSemBandaNemEquipamento(t *testing.T) {
	tab := tabelas.Padrao()
	quadro := MontarVM(&tab, 480, 350, Entrada{PrazoSelecionado: 36, IncluirInstalacao: true})

	for prazo, p := range quadro {
		if p.CustoBanda != 0 {
			t.Errorf("período %d: VM não tem custo de banda, veio %.2f", prazo, p.CustoBanda)
		}
		if p.CustoEquipamento != 0 {
			t.Errorf("período %d: VM não tem equipamento de enlace, veio %.2f", prazo, p.CustoEquipamento)
		}
	}
	if quadro[36].ReceitaInstalacao != 350 {
		t.Errorf("setup da VM = %.2f, esperado 350", quadro[36].ReceitaInstalacao)
	}
}
