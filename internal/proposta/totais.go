package proposta

import "github.com/nexfibra/api-propostas/internal/desconto"

// RecalcularTotais refaz os totais do topo da proposta a partir dos
// produtos: soma das instalações, soma das mensalidades sem desconto e
// mensalidade final com os descontos de vendedor/diretoria compostos.
// Instalação nunca recebe desconto.
func RecalcularTotais(p *Proposta) {
	p.TotalInstalacao = 0
	p.TotalMensalBase = 0
	for _, produto := range p.Produtos {
		p.TotalInstalacao += produto.ValorInstalacao
		p.TotalMensalBase += produto.ValorMensal
	}
	p.TotalMensal = desconto.AplicarDescontos(p.TotalMensalBase, p.DescontoVendedor, p.PercentualDescontoDiretor)
}

// DeveGerarNovaVersao decide se a gravação atualiza a proposta no lugar
// ou bifurca uma nova versão. Bifurca quando o chamador pede
// explicitamente, ou quando o estado de desconto muda passando a existir
// algum desconto (primeira aplicação ou alteração de percentual).
func DeveGerarNovaVersao(atual, nova *Proposta, explicita bool) bool {
	if explicita {
		return true
	}
	mudou := atual.DescontoVendedor != nova.DescontoVendedor ||
		atual.PercentualDescontoDiretor != nova.PercentualDescontoDiretor
	temDesconto := nova.DescontoVendedor || nova.PercentualDescontoDiretor > 0
	return mudou && temDesconto
}
