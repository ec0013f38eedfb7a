// Package comissao resolve as comissões de um negócio a partir das
// tabelas escalonadas por faixa de receita e prazo contratual.
package comissao

import "github.com/nexfibra/api-propostas/internal/tabelas"

// Resultado detalha as comissões resolvidas para uma receita base.
// As três comissões (vendedor + indicação + influenciador) são
// independentes e se somam; um negócio pode pagar as três ao mesmo tempo.
type Resultado struct {
	TaxaVendedor       float64 `json:"taxaVendedor"`
	ValorVendedor      float64 `json:"valorVendedor"`
	TaxaIndicacao      float64 `json:"taxaIndicacao"`
	ValorIndicacao     float64 `json:"valorIndicacao"`
	TaxaInfluenciador  float64 `json:"taxaInfluenciador"`
	ValorInfluenciador float64 `json:"valorInfluenciador"`
	Total              float64 `json:"total"`
	UsouTabelaCanal    bool    `json:"usouTabelaCanal"`
}

// Resolver calcula as comissões sobre a receita base informada (valor
// pós-desconto e pré-comissão). Quando há qualquer parceiro no negócio,
// a comissão do vendedor sai da tabela de canal em vez da tabela de
// vendedor direto — parceiros reduzem a fatia direta do vendedor.
func Resolver(t tabelas.TabelasComissao, receitaBase float64, prazo int, temIndicacao, temInfluenciador bool) Resultado {
	temParceiro := temIndicacao || temInfluenciador

	var r Resultado
	r.UsouTabelaCanal = temParceiro
	if temParceiro {
		r.TaxaVendedor = t.Canal.Taxa(receitaBase, prazo)
	} else {
		r.TaxaVendedor = t.VendedorDireto.Taxa(receitaBase, prazo)
	}
	r.ValorVendedor = receitaBase * r.TaxaVendedor / 100

	if temIndicacao {
		r.TaxaIndicacao = t.Indicacao.Taxa(receitaBase, prazo)
		r.ValorIndicacao = receitaBase * r.TaxaIndicacao / 100
	}
	if temInfluenciador {
		r.TaxaInfluenciador = t.Influenciador.Taxa(receitaBase, prazo)
		r.ValorInfluenciador = receitaBase * r.TaxaInfluenciador / 100
	}

	r.Total = r.ValorVendedor + r.ValorIndicacao + r.ValorInfluenciador
	return r
}
