// Package precificacao é a fachada dos calculadores de proposta: recebe
// a configuração de um produto, consulta as tabelas injetadas e devolve
// o resultado precificado que a camada de propostas exibe ou persiste.
//
// Todo o cálculo é puro e determinístico; nenhuma função deste pacote
// faz I/O.
package precificacao

import (
	"github.com/nexfibra/api-propostas/internal/comissao"
	"github.com/nexfibra/api-propostas/internal/desconto"
	"github.com/nexfibra/api-propostas/internal/dre"
	"github.com/nexfibra/api-propostas/internal/payback"
	"github.com/nexfibra/api-propostas/internal/tabelas"
)

// ConfiguracaoRadio é a configuração de um produto de internet via
// rádio/fibra. O calculador só lê a configuração; nunca a altera.
type ConfiguracaoRadio struct {
	Velocidade        int     `json:"velocidade"`
	Prazo             int     `json:"prazo"`
	IncluirInstalacao bool    `json:"incluirInstalacao"`
	DescontoVendedor  bool    `json:"descontoVendedor"`
	PercentualDiretor float64 `json:"percentualDiretor"`
	TemIndicacao      bool    `json:"temIndicacao"`
	TemInfluenciador  bool    `json:"temInfluenciador"`
}

// ConfiguracaoVM é a configuração de um produto de máquina virtual.
type ConfiguracaoVM struct {
	VCPUs             int     `json:"vcpus"`
	MemoriaGB         int     `json:"memoriaGb"`
	DiscoGB           int     `json:"discoGb"`
	Prazo             int     `json:"prazo"`
	IncluirSetup      bool    `json:"incluirSetup"`
	DescontoVendedor  bool    `json:"descontoVendedor"`
	PercentualDiretor float64 `json:"percentualDiretor"`
	TemIndicacao      bool    `json:"temIndicacao"`
	TemInfluenciador  bool    `json:"temInfluenciador"`
}

// Resultado é o objeto precificado devolvido pelos calculadores.
// Recalculado do zero a cada mudança de configuração; não é persistido
// diretamente — a camada de propostas copia os campos que lhe interessam.
type Resultado struct {
	MensalidadeBase float64             `json:"mensalidadeBase"` // antes dos descontos de vendedor/diretoria
	Mensalidade     float64             `json:"mensalidade"`     // valor final de venda
	TaxaInstalacao  float64             `json:"taxaInstalacao"`
	Comissoes       comissao.Resultado  `json:"comissoes"`
	Payback         payback.Validacao   `json:"payback"`
	DRE             map[int]dre.Periodo `json:"dre"`
}

// CalcularRadio precifica um produto de rádio/fibra. Velocidade sem
// plano cadastrado, ou prazo sem preço, resulta em mensalidade 0 — o
// estado "nenhuma venda configurada", não uma falha.
func CalcularRadio(t *tabelas.Tabelas, cfg ConfiguracaoRadio) Resultado {
	plano := t.PlanoPorVelocidade(cfg.Velocidade)
	precoBase := tabelas.PrecoMensal(plano, cfg.Prazo)
	mensalidade := desconto.AplicarDescontos(precoBase, cfg.DescontoVendedor, cfg.PercentualDiretor)

	taxaInstalacao := 0.0
	custoEquipamento := 0.0
	if plano != nil {
		custoEquipamento = plano.CustoEquipamentoLink
		if cfg.IncluirInstalacao {
			taxaInstalacao = plano.TaxaInstalacao
		}
	}

	// Comissões saem do valor pós-desconto e pré-comissão.
	comissoes := comissao.Resolver(t.Comissoes, mensalidade, cfg.Prazo, cfg.TemIndicacao, cfg.TemInfluenciador)

	validacao := payback.Validar(taxaInstalacao, custoEquipamento, precoBase, cfg.Prazo, cfg.DescontoVendedor, cfg.PercentualDiretor)

	quadro := dre.Montar(t, dre.Entrada{
		Plano:             plano,
		PrazoSelecionado:  cfg.Prazo,
		IncluirInstalacao: cfg.IncluirInstalacao,
		DescontoVendedor:  cfg.DescontoVendedor,
		PercentualDiretor: cfg.PercentualDiretor,
		TemIndicacao:      cfg.TemIndicacao,
		TemInfluenciador:  cfg.TemInfluenciador,
	})

	return Resultado{
		MensalidadeBase: precoBase,
		Mensalidade:     mensalidade,
		TaxaInstalacao:  taxaInstalacao,
		Comissoes:       comissoes,
		Payback:         validacao,
		DRE:             quadro,
	}
}

// CalcularVM precifica uma máquina virtual. Ordem de composição do
// preço base, que NÃO é intercambiável: tarifa unitária -> acréscimo de
// parceiro (+20%, só na linha de VM) -> desconto de prazo -> descontos
// de vendedor/diretoria. As comissões saem do valor pós-desconto e
// pré-comissão.
func CalcularVM(t *tabelas.Tabelas, cfg ConfiguracaoVM) Resultado {
	temParceiro := cfg.TemIndicacao || cfg.TemInfluenciador

	tarifa := float64(cfg.VCPUs)*t.VM.PrecoPorVCPU +
		float64(cfg.MemoriaGB)*t.VM.PrecoPorGBRAM +
		float64(cfg.DiscoGB)*t.VM.PrecoPorGBDisco

	precoBase := desconto.AplicarAcrescimoParceiroVM(tarifa, temParceiro)
	precoBase = desconto.AplicarDescontoPrazo(precoBase, t.DescontoPrazo(cfg.Prazo))

	mensalidade := desconto.AplicarDescontos(precoBase, cfg.DescontoVendedor, cfg.PercentualDiretor)

	taxaSetup := 0.0
	if cfg.IncluirSetup {
		taxaSetup = t.VM.TaxaSetup
	}

	comissoes := comissao.Resolver(t.Comissoes, mensalidade, cfg.Prazo, cfg.TemIndicacao, cfg.TemInfluenciador)

	// VM não tem equipamento de enlace; o investimento inicial é só o
	// setup líquido de impostos.
	validacao := payback.Validar(taxaSetup, 0, precoBase, cfg.Prazo, cfg.DescontoVendedor, cfg.PercentualDiretor)

	quadro := dre.MontarVM(t, precoBase, taxaSetup, dre.Entrada{
		PrazoSelecionado:  cfg.Prazo,
		IncluirInstalacao: cfg.IncluirSetup,
		DescontoVendedor:  cfg.DescontoVendedor,
		PercentualDiretor: cfg.PercentualDiretor,
		TemIndicacao:      cfg.TemIndicacao,
		TemInfluenciador:  cfg.TemInfluenciador,
	})

	return Resultado{
		MensalidadeBase: precoBase,
		Mensalidade:     mensalidade,
		TaxaInstalacao:  taxaSetup,
		Comissoes:       comissoes,
		Payback:         validacao,
		DRE:             quadro,
	}
}
