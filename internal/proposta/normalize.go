package proposta

// Normalização da fronteira de armazenamento: propostas gravadas pelo
// sistema antigo chegam com formato frouxo — cliente ora é string, ora
// objeto; os produtos aparecem sob "produtos", "products" ou "items";
// vários campos têm apelidos em inglês. Tudo é absorvido aqui para que
// o restante do sistema só veja a Proposta canônica.

// NormalizarProposta converte um payload bruto (já decodificado de JSON)
// na forma canônica. Campos ausentes ficam com o zero do tipo; não é um
// caminho de erro.
func NormalizarProposta(raw map[string]interface{}) *Proposta {
	p := &Proposta{}

	switch cliente := primeiro(raw, "cliente", "client", "clientData").(type) {
	case string:
		p.ClienteNome = cliente
	case map[string]interface{}:
		p.ClienteNome = pegarString(cliente, "nome", "name", "razaoSocial")
		p.ClienteCNPJ = pegarString(cliente, "cnpj", "document")
		p.ClienteContato = pegarString(cliente, "contato", "contact", "email")
	}

	switch gerente := primeiro(raw, "gerenteContas", "accountManager").(type) {
	case string:
		p.GerenteContas = gerente
	case map[string]interface{}:
		p.GerenteContas = pegarString(gerente, "nome", "name")
	}

	p.Codigo = pegarString(raw, "codigo", "code")
	p.Versao = int(pegarNumero(raw, "versao", "version"))
	p.DescontoVendedor = pegarBool(raw, "descontoVendedor", "applySalespersonDiscount")

	percentual := pegarNumero(raw, "percentualDescontoDiretor", "appliedDirectorDiscountPercentage")
	// O motor não valida faixa de desconto; a fronteira limita aqui.
	if percentual < 0 {
		percentual = 0
	}
	if percentual > 100 {
		percentual = 100
	}
	p.PercentualDescontoDiretor = percentual

	itens, _ := primeiro(raw, "produtos", "products", "items").([]interface{})
	for _, item := range itens {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		produto := ProdutoProposta{
			Tipo:            pegarString(m, "tipo", "type"),
			Descricao:       pegarString(m, "descricao", "description"),
			ValorInstalacao: pegarNumero(m, "valorInstalacao", "setup"),
			ValorMensal:     pegarNumero(m, "valorMensal", "monthly"),
		}
		if detalhes, ok := primeiro(m, "detalhes", "details").(map[string]interface{}); ok {
			produto.Detalhes = detalhes
		}
		p.Produtos = append(p.Produtos, produto)
	}

	return p
}

// primeiro devolve o valor da primeira chave presente.
func primeiro(m map[string]interface{}, chaves ...string) interface{} {
	for _, chave := range chaves {
		if v, ok := m[chave]; ok && v != nil {
			return v
		}
	}
	return nil
}

func pegarString(m map[string]interface{}, chaves ...string) string {
	s, _ := primeiro(m, chaves...).(string)
	return s
}

func pegarNumero(m map[string]interface{}, chaves ...string) float64 {
	switch v := primeiro(m, chaves...).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func pegarBool(m map[string]interface{}, chaves ...string) bool {
	b, _ := primeiro(m, chaves...).(bool)
	return b
}
