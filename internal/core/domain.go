package core

import (
	"errors"
	"strings"
)

const (
	Corrente     ContaTipo = "corrente"
	Poupanca     ContaTipo = "poupanca"
	Investimento ContaTipo = "investimento"

	Receita CategoriaTipo = "receita"
	Despesa CategoriaTipo = "despesa"
)

// CasalPlaceholder is the owning-household id until real households exist.
const CasalPlaceholder = "casal-1"

type (
	ContaTipo     string
	CategoriaTipo string

	Conta struct {
		ID      string    `json:"id"`
		CasalID string    `json:"casalId"`
		Nome    string    `json:"nome"`
		Tipo    ContaTipo `json:"tipo"`
		Saldo   Money     `json:"saldo"`
		Ativa   bool      `json:"ativa"`
		Icone   string    `json:"icone,omitempty"`
	}

	Categoria struct {
		ID    string        `json:"id"`
		Nome  string        `json:"nome"`
		Tipo  CategoriaTipo `json:"tipo"`
		Cor   string        `json:"cor,omitempty"`
		Icone string        `json:"icone,omitempty"`
	}

	// ContaPatch carries a partial update; nil fields are left untouched.
	ContaPatch struct {
		Nome  *string
		Tipo  *ContaTipo
		Saldo *Money
		Ativa *bool
		Icone *string
	}

	// CategoriaPatch carries a partial update; nil fields are left untouched.
	CategoriaPatch struct {
		Nome  *string
		Tipo  *CategoriaTipo
		Cor   *string
		Icone *string
	}
)

var (
	ErrNotFound           = errors.New("entity not found")
	ErrDuplicateCategoria = errors.New("categoria with this nome and tipo already exists")
	ErrProtectedTipo      = errors.New("tipo of a default categoria cannot be changed")
	ErrProtectedCategoria = errors.New("default categoria cannot be deleted")
	ErrEmptyNome          = errors.New("empty nome")
	ErrInvalidTipo        = errors.New("invalid tipo")
	ErrInvalidAmount      = errors.New("invalid amount")
)

func (t ContaTipo) IsValid() bool {
	switch t {
	case Corrente, Poupanca, Investimento:
		return true
	default:
		return false
	}
}

func (t CategoriaTipo) IsValid() bool {
	switch t {
	case Receita, Despesa:
		return true
	default:
		return false
	}
}

func (c Conta) Validate() error {
	if len(strings.TrimSpace(c.Nome)) == 0 {
		return ErrEmptyNome
	}
	if len(c.Nome) > 100 {
		return errors.New("nome too long (max 100 characters)")
	}
	if !c.Tipo.IsValid() {
		return ErrInvalidTipo
	}
	return nil
}

func (c Categoria) Validate() error {
	if len(strings.TrimSpace(c.Nome)) == 0 {
		return ErrEmptyNome
	}
	if len(c.Nome) > 100 {
		return errors.New("nome too long (max 100 characters)")
	}
	if !c.Tipo.IsValid() {
		return ErrInvalidTipo
	}
	return nil
}

// Apply merges the non-nil patch fields over the conta.
func (c Conta) Apply(p ContaPatch) Conta {
	if p.Nome != nil {
		c.Nome = *p.Nome
	}
	if p.Tipo != nil {
		c.Tipo = *p.Tipo
	}
	if p.Saldo != nil {
		c.Saldo = *p.Saldo
	}
	if p.Ativa != nil {
		c.Ativa = *p.Ativa
	}
	if p.Icone != nil {
		c.Icone = *p.Icone
	}
	return c
}

// Apply merges the non-nil patch fields over the categoria,
// trimming nome when it is provided.
func (c Categoria) Apply(p CategoriaPatch) Categoria {
	if p.Nome != nil {
		c.Nome = strings.TrimSpace(*p.Nome)
	}
	if p.Tipo != nil {
		c.Tipo = *p.Tipo
	}
	if p.Cor != nil {
		c.Cor = *p.Cor
	}
	if p.Icone != nil {
		c.Icone = *p.Icone
	}
	return c
}

// NormalizeNome folds a categoria nome for duplicate comparison.
func NormalizeNome(nome string) string {
	return strings.ToLower(strings.TrimSpace(nome))
}

// SameNomeTipo reports whether the categoria collides with the given
// nome/tipo pair under the uniqueness rule (case-insensitive trimmed
// nome, identical tipo).
func (c Categoria) SameNomeTipo(nome string, tipo CategoriaTipo) bool {
	return NormalizeNome(c.Nome) == NormalizeNome(nome) && c.Tipo == tipo
}
