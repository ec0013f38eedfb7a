// Package payback simula o fluxo de caixa mês a mês de um contrato para
// encontrar o mês em que o investimento inicial é recuperado.
//
// As constantes percentuais abaixo são fixas para esta família de
// produtos e independem das alíquotas editáveis do painel de DRE. As
// duas fontes podem divergir; manter os dois caminhos separados preserva
// o comportamento observado.
package payback

import (
	"github.com/nexfibra/api-propostas/internal/desconto"
	"github.com/nexfibra/api-propostas/internal/tabelas"
)

const (
	taxaBanda            = 0.0725 // custo de banda sobre a receita mensal
	taxaImposto          = 0.15   // imposto sobre a receita mensal
	taxaCustoDespesa     = 0.10   // custo/despesa sobre a receita mensal
	taxaComissaoVendedor = 0.144  // comissão única do vendedor, paga no mês 1

	taxaImpostoInstalacao = 0.15 // imposto sobre a taxa de instalação (mês 0)
	taxaCustoInstalacao   = 0.10 // custo/despesa sobre a taxa de instalação (mês 0)
)

// Calcular retorna o primeiro mês em que o saldo acumulado do contrato
// deixa de ser negativo. Se a receita mensal for zero ou negativa, ou se
// o saldo nunca se recuperar dentro do prazo, retorna o próprio prazo.
//
// O saldo do mês 0 (investimento inicial) nunca encerra a simulação
// sozinho, mesmo quando positivo; a primeira verificação acontece após
// o fluxo do mês 1.
func Calcular(taxaInstalacao, custoEquipamento, receitaMensal float64, prazo int, descontoVendedor bool, percentualDiretor float64) int {
	if receitaMensal <= 0 {
		return prazo
	}

	receita := desconto.AplicarDescontos(receitaMensal, descontoVendedor, percentualDiretor)

	saldo := taxaInstalacao - custoEquipamento -
		taxaInstalacao*taxaImpostoInstalacao -
		taxaInstalacao*taxaCustoInstalacao

	for mes := 1; mes <= prazo; mes++ {
		fluxo := receita -
			receita*taxaBanda -
			receita*taxaImposto -
			receita*taxaCustoDespesa
		if mes == 1 {
			fluxo -= receita * taxaComissaoVendedor
		}
		saldo += fluxo
		if saldo >= 0 {
			return mes
		}
	}
	return prazo
}

// Validacao é o resultado da checagem do payback contra o teto comercial.
type Validacao struct {
	Valido        bool `json:"valido"`
	PaybackReal   int  `json:"paybackReal"`
	PaybackMaximo int  `json:"paybackMaximo"`
}

// Validar roda a simulação e compara o resultado com o teto de payback
// do prazo. O teto é inclusivo: payback igual ao máximo ainda é válido.
func Validar(taxaInstalacao, custoEquipamento, receitaMensal float64, prazo int, descontoVendedor bool, percentualDiretor float64) Validacao {
	real := Calcular(taxaInstalacao, custoEquipamento, receitaMensal, prazo, descontoVendedor, percentualDiretor)
	maximo := tabelas.PaybackMaximo(prazo)
	return Validacao{
		Valido:        real > 0 && real <= maximo,
		PaybackReal:   real,
		PaybackMaximo: maximo,
	}
}
