// Package repository implements CRUD over the persisted collections.
// Every operation is a full read-modify-write cycle against the storage
// adapter: load the whole list, scan linearly, mutate, write the whole
// list back. That cycle is not atomic across concurrent callers; with
// two racing mutations the last save wins.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"fincouples/internal/core"
	"fincouples/internal/kvstore"
	"fincouples/internal/storage"
)

// Contas provides CRUD over the conta collection. No uniqueness or
// cross-field validation applies here, only existence checks.
type Contas struct {
	col   *storage.Collection[core.Conta]
	newID func() string
}

func NewContas(store kvstore.Store) *Contas {
	return &Contas{
		col:   storage.NewCollection[core.Conta](store, storage.ContasKey),
		newID: uuid.NewString,
	}
}

// List returns the stored collection. No seeding happens for contas.
func (r *Contas) List(ctx context.Context) ([]core.Conta, error) {
	return r.load(ctx), nil
}

// Create assigns a fresh id, appends and persists. The returned conta
// carries the generated id.
func (r *Contas) Create(ctx context.Context, data core.Conta) (core.Conta, error) {
	contas := r.load(ctx)

	data.ID = r.newID()
	if data.CasalID == "" {
		data.CasalID = core.CasalPlaceholder
	}

	contas = append(contas, data)
	r.col.Save(ctx, contas)

	slog.InfoContext(ctx, "Conta created",
		"id", data.ID, "nome", data.Nome, "tipo", data.Tipo)
	return data, nil
}

// Update merges the patch over the conta with the given id.
func (r *Contas) Update(ctx context.Context, id string, patch core.ContaPatch) (core.Conta, error) {
	contas := r.load(ctx)

	for i, c := range contas {
		if c.ID == id {
			contas[i] = c.Apply(patch)
			r.col.Save(ctx, contas)
			return contas[i], nil
		}
	}
	return core.Conta{}, fmt.Errorf("update conta %s: %w", id, core.ErrNotFound)
}

// Delete removes the conta with the given id.
func (r *Contas) Delete(ctx context.Context, id string) error {
	contas := r.load(ctx)

	for i, c := range contas {
		if c.ID == id {
			contas = append(contas[:i], contas[i+1:]...)
			r.col.Save(ctx, contas)
			slog.InfoContext(ctx, "Conta deleted", "id", id)
			return nil
		}
	}
	return fmt.Errorf("delete conta %s: %w", id, core.ErrNotFound)
}

func (r *Contas) load(ctx context.Context) []core.Conta {
	contas := r.col.Load(ctx)
	for i := range contas {
		contas[i].Icone = core.MigrateIcone(contas[i].Icone)
	}
	return contas
}
