package core

import "strings"

// PadraoPrefix marks the ids of seeded default categorias. Ids are fixed
// so the default set is deterministic across installations.
const PadraoPrefix = "padrao-"

// IsPadrao reports whether the id belongs to a default categoria.
func IsPadrao(id string) bool {
	return strings.HasPrefix(id, PadraoPrefix)
}

// DefaultCategorias returns a fresh copy of the seed set: 10 despesa and
// 4 receita categorias with fixed ids, colors and icons. Order matters;
// the seeded collection is persisted exactly in this order.
func DefaultCategorias() []Categoria {
	return []Categoria{
		// Despesas
		{ID: "padrao-moradia", Nome: "Moradia", Tipo: Despesa, Cor: "#ef4444", Icone: "moradia"},
		{ID: "padrao-alimentacao", Nome: "Alimentacao", Tipo: Despesa, Cor: "#ef4444", Icone: "alimentacao"},
		{ID: "padrao-transporte", Nome: "Transporte", Tipo: Despesa, Cor: "#f97316", Icone: "transporte"},
		{ID: "padrao-saude", Nome: "Saude", Tipo: Despesa, Cor: "#ef4444", Icone: "saude"},
		{ID: "padrao-educacao", Nome: "Educacao", Tipo: Despesa, Cor: "#3b82f6", Icone: "educacao"},
		{ID: "padrao-compras", Nome: "Compras", Tipo: Despesa, Cor: "#f97316", Icone: "compras"},
		{ID: "padrao-contas", Nome: "Contas", Tipo: Despesa, Cor: "#ef4444", Icone: "contas"},
		{ID: "padrao-lazer", Nome: "Lazer", Tipo: Despesa, Cor: "#3b82f6", Icone: "lazer"},
		{ID: "padrao-roupas", Nome: "Roupas", Tipo: Despesa, Cor: "#f97316", Icone: "roupas"},
		{ID: "padrao-assinaturas", Nome: "Assinaturas", Tipo: Despesa, Cor: "#3b82f6", Icone: "assinaturas"},
		// Receitas
		{ID: "padrao-salario", Nome: "Salario", Tipo: Receita, Cor: "#22c55e", Icone: "salario"},
		{ID: "padrao-outras-receitas", Nome: "Outras Receitas", Tipo: Receita, Cor: "#22c55e", Icone: "outras-receitas"},
		{ID: "padrao-presentes", Nome: "Presentes", Tipo: Receita, Cor: "#22c55e", Icone: "presentes"},
		{ID: "padrao-rendimentos", Nome: "Rendimentos", Tipo: Receita, Cor: "#22c55e", Icone: "rendimentos"},
	}
}
