package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fincouples/internal/core"
)

const maxBodyBytes = 1 << 16 // 64KB, collections are tiny

type contaCreateRequest struct {
	Nome  string         `json:"nome"`
	Tipo  core.ContaTipo `json:"tipo"`
	Saldo core.Money     `json:"saldo"`
	Ativa *bool          `json:"ativa"`
	Icone string         `json:"icone"`
}

type contaPatchRequest struct {
	Nome  *string         `json:"nome"`
	Tipo  *core.ContaTipo `json:"tipo"`
	Saldo *core.Money     `json:"saldo"`
	Ativa *bool           `json:"ativa"`
	Icone *string         `json:"icone"`
}

type categoriaCreateRequest struct {
	Nome  string             `json:"nome"`
	Tipo  core.CategoriaTipo `json:"tipo"`
	Cor   string             `json:"cor"`
	Icone string             `json:"icone"`
}

type categoriaPatchRequest struct {
	Nome  *string             `json:"nome"`
	Tipo  *core.CategoriaTipo `json:"tipo"`
	Cor   *string             `json:"cor"`
	Icone *string             `json:"icone"`
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func (req contaCreateRequest) toConta() (core.Conta, error) {
	conta := core.Conta{
		Nome:  strings.TrimSpace(req.Nome),
		Tipo:  req.Tipo,
		Saldo: req.Saldo,
		Ativa: true,
		Icone: req.Icone,
	}
	if req.Ativa != nil {
		conta.Ativa = *req.Ativa
	}
	if err := conta.Validate(); err != nil {
		return core.Conta{}, err
	}
	return conta, nil
}

func (req contaPatchRequest) toPatch() (core.ContaPatch, error) {
	if req.Tipo != nil && !req.Tipo.IsValid() {
		return core.ContaPatch{}, core.ErrInvalidTipo
	}
	if req.Nome != nil && strings.TrimSpace(*req.Nome) == "" {
		return core.ContaPatch{}, core.ErrEmptyNome
	}
	return core.ContaPatch{
		Nome:  req.Nome,
		Tipo:  req.Tipo,
		Saldo: req.Saldo,
		Ativa: req.Ativa,
		Icone: req.Icone,
	}, nil
}

func (req categoriaCreateRequest) toCategoria() (core.Categoria, error) {
	categoria := core.Categoria{
		Nome:  strings.TrimSpace(req.Nome),
		Tipo:  req.Tipo,
		Cor:   req.Cor,
		Icone: req.Icone,
	}
	if err := categoria.Validate(); err != nil {
		return core.Categoria{}, err
	}
	return categoria, nil
}

func (req categoriaPatchRequest) toPatch() (core.CategoriaPatch, error) {
	if req.Tipo != nil && !req.Tipo.IsValid() {
		return core.CategoriaPatch{}, core.ErrInvalidTipo
	}
	if req.Nome != nil && strings.TrimSpace(*req.Nome) == "" {
		return core.CategoriaPatch{}, core.ErrEmptyNome
	}
	return core.CategoriaPatch{
		Nome:  req.Nome,
		Tipo:  req.Tipo,
		Cor:   req.Cor,
		Icone: req.Icone,
	}, nil
}
