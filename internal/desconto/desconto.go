// Package desconto compõe os descontos aplicados à mensalidade de um
// produto. Taxas de instalação/setup nunca recebem desconto; somente a
// recorrência mensal.
package desconto

// FatorVendedor é o desconto fixo de alçada do vendedor (5%).
const FatorVendedor = 0.95

// AplicarDescontos aplica o desconto de vendedor (5% fixo, se habilitado)
// e em seguida o desconto de diretoria sobre o valor base mensal. Os dois
// fatores são multiplicativos. O percentual de diretoria é usado como
// recebido; limitar a faixa [0,100] é responsabilidade de quem chama.
func AplicarDescontos(baseMensal float64, descontoVendedor bool, percentualDiretor float64) float64 {
	valor := baseMensal
	if descontoVendedor {
		valor *= FatorVendedor
	}
	valor *= 1 - percentualDiretor/100
	return valor
}

// AplicarDescontoPrazo aplica o desconto contratual por prazo sobre o
// preço base. É aplicado antes dos descontos de vendedor/diretoria.
func AplicarDescontoPrazo(baseMensal float64, percentualPrazo float64) float64 {
	return baseMensal * (1 - percentualPrazo/100)
}

// AcrescimoParceiroVM é o acréscimo aplicado ao preço base de venda de
// máquinas virtuais quando há parceiro (indicação ou influenciador) no
// negócio: política de preço para absorver o custo extra de comissão.
// Regra exclusiva do calculador de VM; o calculador de rádio/fibra não
// aplica acréscimo.
const AcrescimoParceiroVM = 1.20

// AplicarAcrescimoParceiroVM acrescenta 20% ao preço base de venda da VM
// quando houver qualquer parceiro. Deve ser aplicado estritamente antes
// dos descontos de prazo/diretoria, porque as comissões são calculadas
// sobre o preço pós-desconto e pré-comissão.
func AplicarAcrescimoParceiroVM(baseMensal float64, temParceiro bool) float64 {
	if !temParceiro {
		return baseMensal
	}
	return baseMensal * AcrescimoParceiroVM
}
