package precificacao

import (
	"math"
	"testing"

	"github.com/nexfibra/api-propostas/internal/desconto"
	"github.com/nexfibra/api-propostas/internal/tabelas"
)

func quase(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// Cenário de ponta a ponta do calculador de rádio: 100 Mbps, prazo 24,
// com instalação, sem descontos e sem parceiros.
func TestCalcularRadioCenarioCompleto(t *testing.T) {
	tab := tabelas.Padrao()
	r := CalcularRadio(&tab, ConfiguracaoRadio{
		Velocidade:        100,
		Prazo:             24,
		IncluirInstalacao: true,
	})

	if r.MensalidadeBase != 1578 || r.Mensalidade != 1578 {
		t.Errorf("mensalidade = %.2f (base %.2f), esperado 1578", r.Mensalidade, r.MensalidadeBase)
	}
	if r.TaxaInstalacao != 1996 {
		t.Errorf("taxa de instalação = %.2f, esperado 1996", r.TaxaInstalacao)
	}
	if r.Payback.PaybackReal != 6 {
		t.Errorf("payback real = %d, esperado 6", r.Payback.PaybackReal)
	}
	if r.Payback.PaybackMaximo != 10 {
		t.Errorf("payback máximo = %d, esperado 10", r.Payback.PaybackMaximo)
	}
	if !r.Payback.Valido {
		t.Error("payback 6 ≤ 10 deveria ser válido")
	}
	if len(r.DRE) != len(tabelas.PrazosPadrao) {
		t.Errorf("DRE com %d períodos, esperado %d", len(r.DRE), len(tabelas.PrazosPadrao))
	}
}

func TestCalcularRadioComDescontos(t *testing.T) {
	tab := tabelas.Padrao()
	r := CalcularRadio(&tab, ConfiguracaoRadio{
		Velocidade:        100,
		Prazo:             24,
		IncluirInstalacao: true,
		DescontoVendedor:  true,
		PercentualDiretor: 20,
	})

	if !quase(r.Mensalidade, 1578*0.95*0.80) {
		t.Errorf("mensalidade = %v, esperado %v", r.Mensalidade, 1578*0.95*0.80)
	}
	// instalação nunca recebe desconto
	if r.TaxaInstalacao != 1996 {
		t.Errorf("taxa de instalação = %.2f, esperado 1996 sem desconto", r.TaxaInstalacao)
	}
	// as comissões saem do valor pós-desconto
	if !quase(r.Comissoes.ValorVendedor, r.Mensalidade*r.Comissoes.TaxaVendedor/100) {
		t.Error("comissão do vendedor deveria incidir sobre a mensalidade com desconto")
	}
}

// Velocidade sem plano cadastrado é o estado "nenhuma venda configurada",
// não uma falha.
func TestCalcularRadioVelocidadeInexistente(t *testing.T) {
	tab := tabelas.Padrao()
	r := CalcularRadio(&tab, ConfiguracaoRadio{Velocidade: 77, Prazo: 24})

	if r.Mensalidade != 0 || r.MensalidadeBase != 0 {
		t.Errorf("mensalidade = %.2f, esperado 0", r.Mensalidade)
	}
	if r.Payback.PaybackReal != 24 {
		t.Errorf("payback = %d, esperado o prazo (24)", r.Payback.PaybackReal)
	}
	if r.Payback.Valido {
		t.Error("sem receita o payback não deveria validar")
	}
}

func TestCalcularVMComposicaoDePreco(t *testing.T) {
	tab := tabelas.Padrao()
	cfg := ConfiguracaoVM{VCPUs: 4, MemoriaGB: 8, DiscoGB: 100, Prazo: 36, IncluirSetup: true}

	r := CalcularVM(&tab, cfg)

	// tarifa: 4×45 + 8×30 + 100×0.60 = 480; prazo 36 tem 10% de desconto
	esperado := desconto.AplicarDescontoPrazo(480, 10)
	if !quase(r.MensalidadeBase, esperado) {
		t.Errorf("preço base = %v, esperado %v", r.MensalidadeBase, esperado)
	}
	if !quase(r.Mensalidade, r.MensalidadeBase) {
		t.Errorf("sem descontos de vendedor/diretoria a mensalidade deveria ser o preço base")
	}
	if r.TaxaInstalacao != 350 {
		t.Errorf("setup = %.2f, esperado 350", r.TaxaInstalacao)
	}
}

// Com parceiro, o preço base da VM sobe 20% antes dos descontos de
// prazo/diretoria. Regra exclusiva da linha de VM.
func TestCalcularVMAcrescimoDeParceiro(t *testing.T) {
	tab := tabelas.Padrao()
	cfg := ConfiguracaoVM{VCPUs: 4, MemoriaGB: 8, DiscoGB: 100, Prazo: 36, TemIndicacao: true}

	r := CalcularVM(&tab, cfg)

	esperado := desconto.AplicarDescontoPrazo(480*1.20, 10)
	if !quase(r.MensalidadeBase, esperado) {
		t.Errorf("preço base com parceiro = %v, esperado %v", r.MensalidadeBase, esperado)
	}
	if !r.Comissoes.UsouTabelaCanal {
		t.Error("com parceiro a comissão do vendedor deveria sair da tabela de canal")
	}

	// o calculador de rádio nunca aplica o acréscimo
	radio := CalcularRadio(&tab, ConfiguracaoRadio{Velocidade: 100, Prazo: 24, TemIndicacao: true})
	if radio.MensalidadeBase != 1578 {
		t.Errorf("rádio com parceiro: preço base %.2f, esperado 1578 sem acréscimo", radio.MensalidadeBase)
	}
}

func TestCalcularVMSemSetup(t *testing.T) {
	tab := tabelas.Padrao()
	r := CalcularVM(&tab, ConfiguracaoVM{VCPUs: 2, MemoriaGB: 4, DiscoGB: 50, Prazo: 12})
	if r.TaxaInstalacao != 0 {
		t.Errorf("sem setup incluído a taxa deveria ser 0, veio %.2f", r.TaxaInstalacao)
	}
}
