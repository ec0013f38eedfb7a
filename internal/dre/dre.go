// Package dre monta o demonstrativo de resultado simplificado de um
// produto para cada prazo contratual padrão, independentemente do prazo
// efetivamente selecionado pelo usuário.
package dre

import (
	"github.com/nexfibra/api-propostas/internal/comissao"
	"github.com/nexfibra/api-propostas/internal/desconto"
	"github.com/nexfibra/api-propostas/internal/payback"
	"github.com/nexfibra/api-propostas/internal/tabelas"
)

// Custo/despesa do DRE é fixo em 10%, independente da alíquota editável
// "custoDespesa" do painel. As duas fontes podem divergir de propósito.
const taxaCustoDespesa = 0.10

// Periodo é a quebra do DRE para um prazo de relatório.
type Periodo struct {
	Meses                  int                `json:"meses"`
	Mensalidade            float64            `json:"mensalidade"`
	ReceitaTotal           float64            `json:"receitaTotal"`
	ReceitaInstalacao      float64            `json:"receitaInstalacao"`
	ReceitaPrimeiroPeriodo float64            `json:"receitaPrimeiroPeriodo"`
	CustoBanda             float64            `json:"custoBanda"`
	CustoEquipamento       float64            `json:"custoEquipamento"`
	SimplesNacional        float64            `json:"simplesNacional"`
	Comissoes              comissao.Resultado `json:"comissoes"`
	CustoDespesa           float64            `json:"custoDespesa"`
	Saldo                  float64            `json:"saldo"`
	MargemPercentual       float64            `json:"margemPercentual"`
	MarkupPercentual       float64            `json:"markupPercentual"`
	Lucratividade          float64            `json:"lucratividade"`
	PaybackMeses           int                `json:"paybackMeses"`
}

// Entrada reúne os parâmetros do DRE de um produto de rádio/fibra.
type Entrada struct {
	Plano             *tabelas.PlanoVelocidade // nil = nenhuma velocidade escolhida
	PrazoSelecionado  int
	IncluirInstalacao bool
	DescontoVendedor  bool
	PercentualDiretor float64
	TemIndicacao      bool
	TemInfluenciador  bool
}

// base agrupa os valores de referência já resolvidos de um produto.
type base struct {
	precoMensal      float64
	taxaInstalacao   float64
	custoEquipamento float64
	velocidade       int
}

// Montar produz o DRE de rádio/fibra para todos os prazos padrão
// (12/24/36/48/60).
//
// A mensalidade de todos os períodos usa o preço do prazo SELECIONADO,
// não o preço do prazo do período: o painel responde "e se este negócio
// rodasse N meses ao preço de hoje". Escolha de negócio deliberada.
//
// Sem plano selecionado, os valores caem nas premissas padrão para que
// o painel sempre renderize algo razoável; não é um caminho de erro.
func Montar(t *tabelas.Tabelas, e Entrada) map[int]Periodo {
	b := base{
		precoMensal:      t.Premissas.MensalidadePadrao,
		taxaInstalacao:   t.Premissas.TaxaInstalacaoPadrao,
		custoEquipamento: t.Premissas.CustoEquipamentoPadrao,
	}
	if e.Plano != nil {
		b.precoMensal = tabelas.PrecoMensal(e.Plano, e.PrazoSelecionado)
		b.taxaInstalacao = e.Plano.TaxaInstalacao
		b.custoEquipamento = e.Plano.CustoEquipamentoLink
		b.velocidade = e.Plano.Velocidade
	}
	return montar(t, b, e)
}

// MontarVM produz o DRE do calculador de máquinas virtuais a partir do
// preço base de venda já composto (acréscimo de parceiro e desconto de
// prazo aplicados). VM não tem custo de banda nem equipamento de enlace.
func MontarVM(t *tabelas.Tabelas, precoBase, taxaSetup float64, e Entrada) map[int]Periodo {
	b := base{
		precoMensal:    precoBase,
		taxaInstalacao: taxaSetup,
	}
	return montar(t, b, e)
}

func montar(t *tabelas.Tabelas, b base, e Entrada) map[int]Periodo {
	temParceiro := e.TemIndicacao || e.TemInfluenciador
	resultado := make(map[int]Periodo, len(tabelas.PrazosPadrao))

	for _, meses := range tabelas.PrazosPadrao {
		mensalidade := desconto.AplicarDescontos(b.precoMensal, e.DescontoVendedor, e.PercentualDiretor)
		receitaTotal := mensalidade * float64(meses)

		receitaInstalacao := 0.0
		if e.IncluirInstalacao {
			receitaInstalacao = b.taxaInstalacao
		}
		receitaPrimeiroPeriodo := receitaTotal + receitaInstalacao

		custoBanda := float64(b.velocidade) * t.Aliquotas.CustoBandaPorMega * float64(meses)
		simples := receitaPrimeiroPeriodo * t.Aliquotas.SimplesNacional / 100

		// Comissões de parceiro e seleção canal/direto usam o prazo
		// selecionado, não o prazo do período de relatório.
		comissoes := comissao.Resolver(t.Comissoes, receitaPrimeiroPeriodo, e.PrazoSelecionado, e.TemIndicacao, e.TemInfluenciador)

		custoDespesa := receitaPrimeiroPeriodo * taxaCustoDespesa

		saldo := receitaPrimeiroPeriodo - custoBanda - b.custoEquipamento - simples - comissoes.Total - custoDespesa

		margem := 0.0
		if receitaPrimeiroPeriodo != 0 {
			margem = saldo / receitaPrimeiroPeriodo * 100
		}

		// No lugar da flag de desconto de vendedor entra a presença de
		// parceiro: parceiros trocam a tabela de comissão, espelhando o
		// ramo de comissão do mês 1 do simulador. Sem desconto de
		// diretoria aqui.
		pb := payback.Calcular(receitaInstalacao, b.custoEquipamento, b.precoMensal, meses, temParceiro, 0)

		resultado[meses] = Periodo{
			Meses:                  meses,
			Mensalidade:            mensalidade,
			ReceitaTotal:           receitaTotal,
			ReceitaInstalacao:      receitaInstalacao,
			ReceitaPrimeiroPeriodo: receitaPrimeiroPeriodo,
			CustoBanda:             custoBanda,
			CustoEquipamento:       b.custoEquipamento,
			SimplesNacional:        simples,
			Comissoes:              comissoes,
			CustoDespesa:           custoDespesa,
			Saldo:                  saldo,
			MargemPercentual:       margem,
			MarkupPercentual:       margem,
			Lucratividade:          margem,
			PaybackMeses:           pb,
		}
	}
	return resultado
}
