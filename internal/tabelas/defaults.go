package tabelas

// Padrao devolve o conjunto de tabelas com os valores comerciais padrão.
// É a carga inicial da configuração persistida; um administrador pode
// editar tudo depois pela rota de configurações.
func Padrao() Tabelas {
	return Tabelas{
		Planos: []PlanoVelocidade{
			{
				Velocidade:           50,
				PrecoPorPrazo:        map[int]float64{12: 1186, 24: 1068, 36: 986, 48: 932, 60: 886},
				TaxaInstalacao:       1497,
				CustoEquipamentoLink: 5200,
				Descricao:            "Link dedicado 50 Mbps",
			},
			{
				Velocidade:           100,
				PrecoPorPrazo:        map[int]float64{12: 1756, 24: 1578, 36: 1458, 48: 1380, 60: 1312},
				TaxaInstalacao:       1996,
				CustoEquipamentoLink: 6700,
				Descricao:            "Link dedicado 100 Mbps",
			},
			{
				Velocidade:           150,
				PrecoPorPrazo:        map[int]float64{12: 2278, 24: 2052, 36: 1896, 48: 1794, 60: 1706},
				TaxaInstalacao:       2246,
				CustoEquipamentoLink: 7400,
				Descricao:            "Link dedicado 150 Mbps",
			},
			{
				Velocidade:           200,
				PrecoPorPrazo:        map[int]float64{12: 2742, 24: 2468, 36: 2282, 48: 2158, 60: 2052},
				TaxaInstalacao:       2495,
				CustoEquipamentoLink: 8200,
				Descricao:            "Link dedicado 200 Mbps",
			},
			{
				Velocidade:           300,
				PrecoPorPrazo:        map[int]float64{12: 3584, 24: 3226, 36: 2982, 48: 2820, 60: 2682},
				TaxaInstalacao:       2994,
				CustoEquipamentoLink: 9600,
				Descricao:            "Link dedicado 300 Mbps",
			},
			{
				Velocidade:           400,
				PrecoPorPrazo:        map[int]float64{12: 4320, 24: 3888, 36: 3594, 48: 3400, 60: 3232},
				TaxaInstalacao:       3493,
				CustoEquipamentoLink: 10800,
				Descricao:            "Link dedicado 400 Mbps",
			},
			{
				Velocidade:           500,
				PrecoPorPrazo:        map[int]float64{12: 4980, 24: 4482, 36: 4142, 48: 3918, 60: 3726},
				TaxaInstalacao:       3992,
				CustoEquipamentoLink: 11900,
				Descricao:            "Link dedicado 500 Mbps",
			},
		},
		VM: PlanoVM{
			PrecoPorVCPU:    45,
			PrecoPorGBRAM:   30,
			PrecoPorGBDisco: 0.60,
			TaxaSetup:       350,
		},
		Comissoes: TabelasComissao{
			Indicacao: TabelaComissao{
				{ReceitaMin: 0, ReceitaMax: 500, TaxaAte24: 2.5, TaxaMais24: 4.0},
				{ReceitaMin: 500.01, ReceitaMax: 1000, TaxaAte24: 3.0, TaxaMais24: 5.0},
				{ReceitaMin: 1000.01, ReceitaMax: 2000, TaxaAte24: 4.0, TaxaMais24: 6.0},
				{ReceitaMin: 2000.01, ReceitaMax: 0, TaxaAte24: 5.0, TaxaMais24: 7.0},
			},
			Influenciador: TabelaComissao{
				{ReceitaMin: 0, ReceitaMax: 500, TaxaAte24: 1.0, TaxaMais24: 1.5},
				{ReceitaMin: 500.01, ReceitaMax: 1000, TaxaAte24: 1.5, TaxaMais24: 2.0},
				{ReceitaMin: 1000.01, ReceitaMax: 2000, TaxaAte24: 2.0, TaxaMais24: 2.5},
				{ReceitaMin: 2000.01, ReceitaMax: 0, TaxaAte24: 2.5, TaxaMais24: 3.0},
			},
			Canal: TabelaComissao{
				{ReceitaMin: 0, ReceitaMax: 500, TaxaAte24: 1.5, TaxaMais24: 2.5},
				{ReceitaMin: 500.01, ReceitaMax: 1000, TaxaAte24: 2.0, TaxaMais24: 3.0},
				{ReceitaMin: 1000.01, ReceitaMax: 2000, TaxaAte24: 2.5, TaxaMais24: 3.5},
				{ReceitaMin: 2000.01, ReceitaMax: 0, TaxaAte24: 3.0, TaxaMais24: 4.0},
			},
			VendedorDireto: TabelaComissao{
				{ReceitaMin: 0, ReceitaMax: 500, TaxaAte24: 3.0, TaxaMais24: 4.5},
				{ReceitaMin: 500.01, ReceitaMax: 1000, TaxaAte24: 3.5, TaxaMais24: 5.0},
				{ReceitaMin: 1000.01, ReceitaMax: 2000, TaxaAte24: 4.0, TaxaMais24: 5.5},
				{ReceitaMin: 2000.01, ReceitaMax: 0, TaxaAte24: 4.5, TaxaMais24: 6.0},
			},
		},
		DescontosPrazo: map[int]float64{12: 0, 24: 5, 36: 10, 48: 12, 60: 15},
		Aliquotas: Aliquotas{
			CustoBandaPorMega: 1.50,
			SimplesNacional:   15,
			CustoDespesa:      10,
			PIS:               0.65,
			COFINS:            3,
			CSLL:              9,
			IRPJ:              15,
		},
		Premissas: PremissasPadrao{
			MensalidadePadrao:      600,
			TaxaInstalacaoPadrao:   2500,
			CustoEquipamentoPadrao: 7000,
		},
	}
}
