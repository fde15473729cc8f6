package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"fincouples/internal/core"
	"fincouples/internal/kvstore"
	"fincouples/internal/storage"
)

// Categorias provides CRUD over the categoria collection, enforcing the
// nome+tipo uniqueness rule and the protection of seeded defaults.
type Categorias struct {
	col   *storage.Collection[core.Categoria]
	newID func() string
}

func NewCategorias(store kvstore.Store) *Categorias {
	return &Categorias{
		col:   storage.NewCollection[core.Categoria](store, storage.CategoriasKey),
		newID: uuid.NewString,
	}
}

// List returns the stored collection, seeding it with the default set
// when empty. The seed is built in memory, persisted once and returned.
func (r *Categorias) List(ctx context.Context) ([]core.Categoria, error) {
	categorias := r.load(ctx)

	if len(categorias) == 0 {
		categorias = core.DefaultCategorias()
		r.col.Save(ctx, categorias)
		slog.InfoContext(ctx, "Seeded default categorias", "count", len(categorias))
	}

	return categorias, nil
}

// Create trims the nome, rejects duplicates and persists the categoria
// with a fresh id.
func (r *Categorias) Create(ctx context.Context, data core.Categoria) (core.Categoria, error) {
	categorias := r.load(ctx)

	data.Nome = strings.TrimSpace(data.Nome)
	for _, c := range categorias {
		if c.SameNomeTipo(data.Nome, data.Tipo) {
			return core.Categoria{}, fmt.Errorf("create categoria %q: %w", data.Nome, core.ErrDuplicateCategoria)
		}
	}

	data.ID = r.newID()
	categorias = append(categorias, data)
	r.col.Save(ctx, categorias)

	slog.InfoContext(ctx, "Categoria created",
		"id", data.ID, "nome", data.Nome, "tipo", data.Tipo)
	return data, nil
}

// Update merges the patch over the categoria with the given id. Default
// categorias keep their tipo; nome or tipo changes re-check the
// uniqueness rule against every other entry.
func (r *Categorias) Update(ctx context.Context, id string, patch core.CategoriaPatch) (core.Categoria, error) {
	categorias := r.load(ctx)

	idx := -1
	for i, c := range categorias {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return core.Categoria{}, fmt.Errorf("update categoria %s: %w", id, core.ErrNotFound)
	}

	current := categorias[idx]
	if core.IsPadrao(current.ID) && patch.Tipo != nil && *patch.Tipo != current.Tipo {
		return core.Categoria{}, fmt.Errorf("update categoria %s: %w", id, core.ErrProtectedTipo)
	}

	if patch.Nome != nil || patch.Tipo != nil {
		novoNome := current.Nome
		if patch.Nome != nil {
			novoNome = strings.TrimSpace(*patch.Nome)
		}
		novoTipo := current.Tipo
		if patch.Tipo != nil {
			novoTipo = *patch.Tipo
		}
		for i, c := range categorias {
			if i != idx && c.SameNomeTipo(novoNome, novoTipo) {
				return core.Categoria{}, fmt.Errorf("update categoria %s: %w", id, core.ErrDuplicateCategoria)
			}
		}
	}

	categorias[idx] = current.Apply(patch)
	r.col.Save(ctx, categorias)
	return categorias[idx], nil
}

// Delete removes the categoria with the given id. Default categorias
// are undeletable; the protection check runs before the existence one.
func (r *Categorias) Delete(ctx context.Context, id string) error {
	if core.IsPadrao(id) {
		return fmt.Errorf("delete categoria %s: %w", id, core.ErrProtectedCategoria)
	}

	categorias := r.load(ctx)
	for i, c := range categorias {
		if c.ID == id {
			categorias = append(categorias[:i], categorias[i+1:]...)
			r.col.Save(ctx, categorias)
			slog.InfoContext(ctx, "Categoria deleted", "id", id)
			return nil
		}
	}
	return fmt.Errorf("delete categoria %s: %w", id, core.ErrNotFound)
}

// IsPadrao reports whether the id belongs to a seeded default categoria.
func (r *Categorias) IsPadrao(id string) bool {
	return core.IsPadrao(id)
}

func (r *Categorias) load(ctx context.Context) []core.Categoria {
	categorias := r.col.Load(ctx)
	for i := range categorias {
		categorias[i].Icone = core.MigrateIcone(categorias[i].Icone)
	}
	return categorias
}
