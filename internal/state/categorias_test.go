package state

import (
	"context"
	"errors"
	"testing"

	"fincouples/internal/core"
	"fincouples/internal/kvstore/memory"
	"fincouples/internal/repository"
)

func newCategoriasState() *Categorias {
	return NewCategorias(repository.NewCategorias(memory.New()))
}

func TestCategorias_StartSeedsDefaults(t *testing.T) {
	s := newCategoriasState()
	s.Start(context.Background())

	categorias := s.Categorias()
	if len(categorias) != 14 {
		t.Fatalf("Categorias() after Start = %d, want 14 defaults", len(categorias))
	}

	if got := len(s.PorTipo(core.Despesa)); got != 10 {
		t.Errorf("PorTipo(despesa) = %d, want 10", got)
	}
	if got := len(s.PorTipo(core.Receita)); got != 4 {
		t.Errorf("PorTipo(receita) = %d, want 4", got)
	}
}

func TestCategorias_AddDuplicateFromSeed(t *testing.T) {
	s := newCategoriasState()
	ctx := context.Background()
	s.Start(ctx)

	if _, err := s.Add(ctx, core.Categoria{Nome: "Pets", Tipo: core.Despesa}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	_, err := s.Add(ctx, core.Categoria{Nome: "pets", Tipo: core.Despesa})
	if !errors.Is(err, core.ErrDuplicateCategoria) {
		t.Fatalf("duplicate Add = %v, want ErrDuplicateCategoria", err)
	}
	if !errors.Is(s.Err(), core.ErrDuplicateCategoria) {
		t.Errorf("Err() = %v, want recorded duplicate error", s.Err())
	}

	// Collection size unchanged at seed-count + 1.
	if got := len(s.Categorias()); got != 15 {
		t.Errorf("Categorias() = %d entries, want 15", got)
	}
}

func TestCategorias_EditProtectedTipo(t *testing.T) {
	s := newCategoriasState()
	ctx := context.Background()
	s.Start(ctx)

	receita := core.Receita
	_, err := s.Edit(ctx, "padrao-moradia", core.CategoriaPatch{Tipo: &receita})
	if !errors.Is(err, core.ErrProtectedTipo) {
		t.Fatalf("Edit tipo on default = %v, want ErrProtectedTipo", err)
	}

	// Nome-only edit on the same default succeeds and updates the mirror.
	nome := "Casa"
	updated, err := s.Edit(ctx, "padrao-moradia", core.CategoriaPatch{Nome: &nome})
	if err != nil {
		t.Fatalf("nome-only Edit: %v", err)
	}
	if updated.Nome != "Casa" {
		t.Errorf("updated Nome = %q, want %q", updated.Nome, "Casa")
	}
	for _, c := range s.Categorias() {
		if c.ID == "padrao-moradia" && c.Nome != "Casa" {
			t.Errorf("mirror not updated: %+v", c)
		}
	}
}

func TestCategorias_RemoveDefaultRejected(t *testing.T) {
	s := newCategoriasState()
	ctx := context.Background()
	s.Start(ctx)

	if err := s.Remove(ctx, "padrao-salario"); !errors.Is(err, core.ErrProtectedCategoria) {
		t.Fatalf("Remove of default = %v, want ErrProtectedCategoria", err)
	}
	if got := len(s.Categorias()); got != 14 {
		t.Errorf("mirror size = %d after rejected remove, want 14", got)
	}
}

func TestCategorias_RemoveUserCreated(t *testing.T) {
	s := newCategoriasState()
	ctx := context.Background()
	s.Start(ctx)

	created, _ := s.Add(ctx, core.Categoria{Nome: "Pets", Tipo: core.Despesa})
	if err := s.Remove(ctx, created.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := len(s.Categorias()); got != 14 {
		t.Errorf("mirror size after remove = %d, want 14", got)
	}
}

func TestCategorias_IsPadrao(t *testing.T) {
	s := newCategoriasState()

	if !s.IsPadrao("padrao-rendimentos") {
		t.Error("IsPadrao(padrao-rendimentos) = false, want true")
	}
	if s.IsPadrao("abc") {
		t.Error("IsPadrao(abc) = true, want false")
	}
}
