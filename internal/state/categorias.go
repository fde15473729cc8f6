package state

import (
	"context"
	"log/slog"
	"sync"

	"fincouples/internal/core"
	"fincouples/internal/repository"
)

// Categorias mirrors the categoria collection.
type Categorias struct {
	mu         sync.Mutex
	repo       *repository.Categorias
	categorias []core.Categoria
	loading    bool
	err        error
	start      sync.Once
}

func NewCategorias(repo *repository.Categorias) *Categorias {
	return &Categorias{repo: repo}
}

// Start triggers the initial fetch exactly once. The first fetch also
// seeds the default categorias through the repository.
func (s *Categorias) Start(ctx context.Context) {
	s.start.Do(func() { s.FetchAll(ctx) })
}

// FetchAll replaces the mirror with the stored collection. Failures are
// recorded and logged, never returned; the prior mirror stays in place.
func (s *Categorias) FetchAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil

	categorias, err := s.repo.List(ctx)
	if err != nil {
		s.err = err
		slog.ErrorContext(ctx, "Failed to fetch categorias", "error", err)
	} else {
		s.categorias = categorias
	}
	s.loading = false
}

// Add creates the categoria and appends the returned entity to the mirror.
func (s *Categorias) Add(ctx context.Context, data core.Categoria) (core.Categoria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	created, err := s.repo.Create(ctx, data)
	if err != nil {
		s.err = err
		return core.Categoria{}, err
	}
	s.categorias = append(s.categorias, created)
	return created, nil
}

// Edit updates the categoria and replaces the matching mirror entry by id.
func (s *Categorias) Edit(ctx context.Context, id string, patch core.CategoriaPatch) (core.Categoria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.err = err
		return core.Categoria{}, err
	}
	for i, c := range s.categorias {
		if c.ID == id {
			s.categorias[i] = updated
			break
		}
	}
	return updated, nil
}

// Remove deletes the categoria and filters it out of the mirror.
func (s *Categorias) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	if err := s.repo.Delete(ctx, id); err != nil {
		s.err = err
		return err
	}
	next := s.categorias[:0]
	for _, c := range s.categorias {
		if c.ID != id {
			next = append(next, c)
		}
	}
	s.categorias = next
	return nil
}

// PorTipo returns the mirrored categorias with the given tipo.
func (s *Categorias) PorTipo(tipo core.CategoriaTipo) []core.Categoria {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Categoria, 0, len(s.categorias))
	for _, c := range s.categorias {
		if c.Tipo == tipo {
			out = append(out, c)
		}
	}
	return out
}

// IsPadrao delegates to the repository predicate.
func (s *Categorias) IsPadrao(id string) bool {
	return s.repo.IsPadrao(id)
}

// Categorias returns a snapshot of the mirror.
func (s *Categorias) Categorias() []core.Categoria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]core.Categoria, 0, len(s.categorias)), s.categorias...)
}

// Loading reports whether an operation is in flight.
func (s *Categorias) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error recorded by the most recent operation, or nil.
func (s *Categorias) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
