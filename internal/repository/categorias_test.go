package repository

import (
	"context"
	"errors"
	"testing"

	"fincouples/internal/core"
	"fincouples/internal/kvstore/memory"
)

func TestCategorias_ListSeedsDefaults(t *testing.T) {
	store := memory.New()
	r := NewCategorias(store)
	ctx := context.Background()

	categorias, err := r.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(categorias) != 14 {
		t.Fatalf("List on empty store = %d categorias, want the 14 defaults", len(categorias))
	}
	for _, c := range categorias {
		if !core.IsPadrao(c.ID) {
			t.Errorf("seeded categoria %q id = %q, want padrao- prefix", c.Nome, c.ID)
		}
	}

	// The seed is persisted: a fresh repository returns the same set
	// without re-seeding.
	again, _ := NewCategorias(store).List(ctx)
	if len(again) != 14 {
		t.Errorf("second List = %d categorias, want 14", len(again))
	}
	for i := range again {
		if again[i].ID != categorias[i].ID {
			t.Errorf("seed order changed at %d: %q vs %q", i, again[i].ID, categorias[i].ID)
		}
	}
}

func TestCategorias_ListDoesNotReseedNonEmpty(t *testing.T) {
	store := memory.New()
	store.Seed("fincouples_categorias", `[{"id":"x","nome":"Pets","tipo":"despesa"}]`)

	categorias, _ := NewCategorias(store).List(context.Background())
	if len(categorias) != 1 || categorias[0].ID != "x" {
		t.Errorf("List over non-empty store = %+v, want stored entry only", categorias)
	}
}

func TestCategorias_Create(t *testing.T) {
	r := NewCategorias(memory.New())
	ctx := context.Background()
	r.List(ctx) // seed

	created, err := r.Create(ctx, core.Categoria{Nome: "  Pets  ", Tipo: core.Despesa})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Nome != "Pets" {
		t.Errorf("Nome = %q, want trimmed %q", created.Nome, "Pets")
	}
	if created.ID == "" || core.IsPadrao(created.ID) {
		t.Errorf("ID = %q, want fresh non-default id", created.ID)
	}

	categorias, _ := r.List(ctx)
	if len(categorias) != 15 {
		t.Errorf("List after create = %d, want seed-count + 1", len(categorias))
	}
}

func TestCategorias_CreateDuplicate(t *testing.T) {
	r := NewCategorias(memory.New())
	ctx := context.Background()
	r.List(ctx)

	if _, err := r.Create(ctx, core.Categoria{Nome: "Pets", Tipo: core.Despesa}); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	tests := []struct {
		name string
		cat  core.Categoria
	}{
		{"same nome and tipo", core.Categoria{Nome: "Pets", Tipo: core.Despesa}},
		{"case-insensitive nome", core.Categoria{Nome: "pets", Tipo: core.Despesa}},
		{"untrimmed nome", core.Categoria{Nome: " Pets ", Tipo: core.Despesa}},
		{"collides with seeded default", core.Categoria{Nome: "moradia", Tipo: core.Despesa}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Create(ctx, tt.cat)
			if !errors.Is(err, core.ErrDuplicateCategoria) {
				t.Errorf("Create(%+v) = %v, want ErrDuplicateCategoria", tt.cat, err)
			}
		})
	}

	// Collection size unchanged at seed-count + 1.
	categorias, _ := r.List(ctx)
	if len(categorias) != 15 {
		t.Errorf("collection size = %d after failed creates, want 15", len(categorias))
	}
}

func TestCategorias_CreateSameNomeDifferentTipo(t *testing.T) {
	r := NewCategorias(memory.New())
	ctx := context.Background()
	r.List(ctx)

	if _, err := r.Create(ctx, core.Categoria{Nome: "Extra", Tipo: core.Despesa}); err != nil {
		t.Fatalf("Create despesa: %v", err)
	}
	// The uniqueness rule is per (nome, tipo) pair.
	if _, err := r.Create(ctx, core.Categoria{Nome: "Extra", Tipo: core.Receita}); err != nil {
		t.Errorf("Create receita with same nome = %v, want success", err)
	}
}

func TestCategorias_UpdateNotFound(t *testing.T) {
	r := NewCategorias(memory.New())

	nome := "x"
	_, err := r.Update(context.Background(), "missing", core.CategoriaPatch{Nome: &nome})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Update of missing id = %v, want ErrNotFound", err)
	}
}

func TestCategorias_UpdateProtectedTipo(t *testing.T) {
	r := NewCategorias(memory.New())
	ctx := context.Background()
	r.List(ctx)

	receita := core.Receita
	_, err := r.Update(ctx, "padrao-moradia", core.CategoriaPatch{Tipo: &receita})
	if !errors.Is(err, core.ErrProtectedTipo) {
		t.Fatalf("tipo change on default = %v, want ErrProtectedTipo", err)
	}

	// Stored tipo unchanged.
	categorias, _ := r.List(ctx)
	for _, c := range categorias {
		if c.ID == "padrao-moradia" && c.Tipo != core.Despesa {
			t.Errorf("stored tipo = %q after rejected update, want despesa", c.Tipo)
		}
	}
}

func TestCategorias_UpdateDefaultKeepsOtherFieldsEditable(t *testing.T) {
	r := NewCategorias(memory.New())
	ctx := context.Background()
	r.List(ctx)

	nome := "Casa"
	cor := "#000000"
	updated, err := r.Update(ctx, "padrao-moradia", core.CategoriaPatch{Nome: &nome, Cor: &cor})
	if err != nil {
		t.Fatalf("nome/cor update on default: %v", err)
	}
	if updated.Nome != "Casa" || updated.Cor != "#000000" {
		t.Errorf("updated = %+v, want new nome and cor", updated)
	}
	if updated.Tipo != core.Despesa {
		t.Errorf("Tipo = %q, want unchanged despesa", updated.Tipo)
	}

	// Re-stating the current tipo is not a change and is allowed.
	despesa := core.Despesa
	if _, err := r.Update(ctx, "padrao-moradia", core.CategoriaPatch{Tipo: &despesa}); err != nil {
		t.Errorf("same-tipo patch on default = %v, want success", err)
	}
}

func TestCategorias_UpdateDuplicateCheck(t *testing.T) {
	r := NewCategorias(memory.New())
	ctx := context.Background()
	r.List(ctx)

	a, _ := r.Create(ctx, core.Categoria{Nome: "Pets", Tipo: core.Despesa})
	b, _ := r.Create(ctx, core.Categoria{Nome: "Viagens", Tipo: core.Despesa})

	// Renaming b onto a collides.
	nome := "pets"
	if _, err := r.Update(ctx, b.ID, core.CategoriaPatch{Nome: &nome}); !errors.Is(err, core.ErrDuplicateCategoria) {
		t.Errorf("rename onto existing = %v, want ErrDuplicateCategoria", err)
	}

	// Renaming a to its own nome in different case is not a collision
	// with itself.
	self := "PETS"
	if _, err := r.Update(ctx, a.ID, core.CategoriaPatch{Nome: &self}); err != nil {
		t.Errorf("self rename = %v, want success", err)
	}
}

func TestCategorias_Delete(t *testing.T) {
	r := NewCategorias(memory.New())
	ctx := context.Background()
	r.List(ctx)

	created, _ := r.Create(ctx, core.Categoria{Nome: "Pets", Tipo: core.Despesa})

	if err := r.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	categorias, _ := r.List(ctx)
	if len(categorias) != 14 {
		t.Errorf("collection size after delete = %d, want 14", len(categorias))
	}

	if err := r.Delete(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("delete of removed id = %v, want ErrNotFound", err)
	}
}

func TestCategorias_DeleteProtected(t *testing.T) {
	r := NewCategorias(memory.New())
	ctx := context.Background()
	r.List(ctx)

	if err := r.Delete(ctx, "padrao-moradia"); !errors.Is(err, core.ErrProtectedCategoria) {
		t.Errorf("delete of default = %v, want ErrProtectedCategoria", err)
	}

	// The prefix rule wins even for ids that were never stored.
	if err := r.Delete(ctx, "padrao-nunca-existiu"); !errors.Is(err, core.ErrProtectedCategoria) {
		t.Errorf("delete of absent padrao id = %v, want ErrProtectedCategoria", err)
	}

	categorias, _ := r.List(ctx)
	if len(categorias) != 14 {
		t.Errorf("collection size = %d after protected deletes, want 14", len(categorias))
	}
}

func TestCategorias_IsPadrao(t *testing.T) {
	r := NewCategorias(memory.New())

	if !r.IsPadrao("padrao-salario") {
		t.Error("IsPadrao(padrao-salario) = false, want true")
	}
	if r.IsPadrao("user-created") {
		t.Error("IsPadrao(user-created) = true, want false")
	}
}
