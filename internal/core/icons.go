package core

// Early releases stored raw emoji in the icone field. Records written by
// those releases are mapped to the current icon names on read; values
// that are already names (pure ASCII) pass through untouched.
var legacyIcones = map[string]string{
	// Navigation
	"\U0001F4CA": "dashboard",
	"\U0001F4B0": "lancamentos",
	"\U0001F3AF": "metas",
	"⚙️": "configuracoes",
	// Contas
	"\U0001F3E6": "conta-corrente",
	"\U0001F4C8": "investimento",
	// Categorias
	"\U0001F3E0": "moradia",
	"\U0001F37D️": "alimentacao",
	"\U0001F697": "transporte",
	"\U0001F48A": "saude",
	"\U0001F4DD": "educacao",
	"\U0001F6D2": "compras",
	"\U0001F3AE": "lazer",
	"\U0001F455": "roupas",
	"\U0001F4F1": "assinaturas",
	"\U0001F4BC": "salario",
	"\U0001F4B5": "outras-receitas",
	"\U0001F381": "presentes",
	"\U0001F4CB": "despesa-padrao",
}

// MigrateIcone converts a legacy emoji identifier to its icon name.
// Unknown values are returned unchanged.
func MigrateIcone(value string) string {
	if value == "" {
		return value
	}
	if isASCII(value) {
		// Already an icon name.
		return value
	}
	if name, ok := legacyIcones[value]; ok {
		return name
	}
	return value
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 0x7F {
			return false
		}
	}
	return true
}
