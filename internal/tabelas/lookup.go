package tabelas

// PrecoMensal retorna a mensalidade do plano para o prazo informado.
// Prazo sem preço cadastrado (ou plano nulo) retorna 0, que significa
// "plano não vendável nesse prazo".
func PrecoMensal(plano *PlanoVelocidade, prazo int) float64 {
	if plano == nil {
		return 0
	}
	return plano.PrecoPorPrazo[prazo]
}

// PaybackMaximo retorna o teto de payback (SLA comercial) em meses para
// o prazo contratual. Prazos não reconhecidos caem no teto de 8 meses.
func PaybackMaximo(prazo int) int {
	switch prazo {
	case 12:
		return 8
	case 24:
		return 10
	case 36:
		return 11
	case 48:
		return 13
	case 60:
		return 14
	default:
		return 8
	}
}

// Taxa retorna o percentual de comissão da faixa que contém a receita
// mensal informada, escolhendo a coluna de até 24 ou acima de 24 meses.
// Receita negativa é tratada como 0 (sempre cai na primeira faixa).
func (t TabelaComissao) Taxa(receitaMensal float64, prazo int) float64 {
	if receitaMensal < 0 {
		receitaMensal = 0
	}
	for _, faixa := range t {
		if receitaMensal < faixa.ReceitaMin {
			continue
		}
		// ReceitaMax zero marca a última faixa, sem teto.
		if faixa.ReceitaMax != 0 && receitaMensal > faixa.ReceitaMax {
			continue
		}
		if prazo <= 24 {
			return faixa.TaxaAte24
		}
		return faixa.TaxaMais24
	}
	return 0
}

// PlanoPorVelocidade localiza o plano com a velocidade exata informada.
// Retorna nil quando não há plano cadastrado para a velocidade.
func (t *Tabelas) PlanoPorVelocidade(velocidade int) *PlanoVelocidade {
	for i := range t.Planos {
		if t.Planos[i].Velocidade == velocidade {
			return &t.Planos[i]
		}
	}
	return nil
}

// DescontoPrazo retorna o percentual de desconto contratual do prazo,
// ou 0 para prazos fora da tabela.
func (t *Tabelas) DescontoPrazo(prazo int) float64 {
	return t.DescontosPrazo[prazo]
}
