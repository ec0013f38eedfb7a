package tabelas

// Prazos contratuais suportados pelos calculadores, em meses.
var PrazosPadrao = []int{12, 24, 36, 48, 60}

// PlanoVelocidade representa um plano de internet via rádio/fibra.
// Dados de referência: uma entrada por velocidade ofertada.
type PlanoVelocidade struct {
	Velocidade           int             `json:"velocidade"` // Mbps
	PrecoPorPrazo        map[int]float64 `json:"precoPorPrazo"`
	TaxaInstalacao       float64         `json:"taxaInstalacao"`
	CustoEquipamentoLink float64         `json:"custoEquipamentoLink"` // enlace de rádio
	Descricao            string          `json:"descricao"`
}

// FaixaComissao é uma faixa de receita mensal da tabela de comissão.
// As faixas são ordenadas, semiabertas e não se sobrepõem; a última
// faixa tem ReceitaMax zero (sem teto).
type FaixaComissao struct {
	ReceitaMin float64 `json:"receitaMin"`
	ReceitaMax float64 `json:"receitaMax"`
	TaxaAte24  float64 `json:"taxaAte24"`  // % para prazos de até 24 meses
	TaxaMais24 float64 `json:"taxaMais24"` // % para prazos acima de 24 meses
}

// TabelaComissao é a lista ordenada de faixas de um tipo de comissão.
type TabelaComissao []FaixaComissao

// TabelasComissao agrupa as quatro tabelas de comissão do negócio.
type TabelasComissao struct {
	Indicacao      TabelaComissao `json:"indicacao"`
	Influenciador  TabelaComissao `json:"influenciador"`
	Canal          TabelaComissao `json:"canal"`
	VendedorDireto TabelaComissao `json:"vendedorDireto"`
}

// Aliquotas são os percentuais editáveis consumidos pelo painel de DRE.
// O simulador de payback NÃO lê esses valores; ele carrega constantes
// próprias (ver pacote payback).
type Aliquotas struct {
	CustoBandaPorMega float64 `json:"custoBandaPorMega"` // R$/Mbps/mês
	SimplesNacional   float64 `json:"simplesNacional"`   // %
	CustoDespesa      float64 `json:"custoDespesa"`      // %
	PIS               float64 `json:"pis"`
	COFINS            float64 `json:"cofins"`
	CSLL              float64 `json:"csll"`
	IRPJ              float64 `json:"irpj"`
}

// PremissasPadrao são os valores de fallback usados quando nenhum plano
// foi selecionado, para que o DRE sempre renderize algo razoável.
type PremissasPadrao struct {
	MensalidadePadrao      float64 `json:"mensalidadePadrao"`
	TaxaInstalacaoPadrao   float64 `json:"taxaInstalacaoPadrao"`
	CustoEquipamentoPadrao float64 `json:"custoEquipamentoPadrao"`
}

// PlanoVM é a tabela de preços unitários do calculador de máquinas virtuais.
type PlanoVM struct {
	PrecoPorVCPU    float64 `json:"precoPorVcpu"`
	PrecoPorGBRAM   float64 `json:"precoPorGbRam"`
	PrecoPorGBDisco float64 `json:"precoPorGbDisco"`
	TaxaSetup       float64 `json:"taxaSetup"`
}

// Tabelas agrega todas as tabelas de referência de um cálculo. O conjunto
// é carregado pela camada de configuração e injetado nos calculadores;
// durante um cálculo é tratado como somente leitura.
type Tabelas struct {
	Planos         []PlanoVelocidade `json:"planos"`
	VM             PlanoVM           `json:"vm"`
	Comissoes      TabelasComissao   `json:"comissoes"`
	DescontosPrazo map[int]float64   `json:"descontosPrazo"` // prazo -> %
	Aliquotas      Aliquotas         `json:"aliquotas"`
	Premissas      PremissasPadrao   `json:"premissas"`
}
