// Package state holds the in-memory mirrors that sit between the
// repositories and the presentation layer. Each container tracks a
// loading flag and the last error, updates its mirror from the entity
// returned by the repository (fetch-after-write, no optimistic entries)
// and guards everything with a mutex so concurrent HTTP handlers can
// share it.
package state

import (
	"context"
	"log/slog"
	"sync"

	"fincouples/internal/core"
	"fincouples/internal/repository"
)

// Contas mirrors the conta collection.
type Contas struct {
	mu      sync.Mutex
	repo    *repository.Contas
	contas  []core.Conta
	loading bool
	err     error
	start   sync.Once
}

func NewContas(repo *repository.Contas) *Contas {
	return &Contas{repo: repo}
}

// Start triggers the initial fetch exactly once.
func (s *Contas) Start(ctx context.Context) {
	s.start.Do(func() { s.FetchAll(ctx) })
}

// FetchAll replaces the mirror with the stored collection. Failures are
// recorded and logged, never returned; the prior mirror stays in place.
func (s *Contas) FetchAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil

	contas, err := s.repo.List(ctx)
	if err != nil {
		s.err = err
		slog.ErrorContext(ctx, "Failed to fetch contas", "error", err)
	} else {
		s.contas = contas
	}
	s.loading = false
}

// Add creates the conta and appends the returned entity to the mirror.
func (s *Contas) Add(ctx context.Context, data core.Conta) (core.Conta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	created, err := s.repo.Create(ctx, data)
	if err != nil {
		s.err = err
		return core.Conta{}, err
	}
	s.contas = append(s.contas, created)
	return created, nil
}

// Edit updates the conta and replaces the matching mirror entry by id.
func (s *Contas) Edit(ctx context.Context, id string, patch core.ContaPatch) (core.Conta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editLocked(ctx, id, patch)
}

func (s *Contas) editLocked(ctx context.Context, id string, patch core.ContaPatch) (core.Conta, error) {
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.err = err
		return core.Conta{}, err
	}
	for i, c := range s.contas {
		if c.ID == id {
			s.contas[i] = updated
			break
		}
	}
	return updated, nil
}

// Remove deletes the conta and filters it out of the mirror.
func (s *Contas) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = nil
	defer func() { s.loading = false }()

	if err := s.repo.Delete(ctx, id); err != nil {
		s.err = err
		return err
	}
	next := s.contas[:0]
	for _, c := range s.contas {
		if c.ID != id {
			next = append(next, c)
		}
	}
	s.contas = next
	return nil
}

// ToggleAtiva flips the ativa flag of the conta. Unknown ids are a
// no-op, matching the derived-operation contract.
func (s *Contas) ToggleAtiva(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contas {
		if c.ID == id {
			ativa := !c.Ativa
			_, err := s.editLocked(ctx, id, core.ContaPatch{Ativa: &ativa})
			return err
		}
	}
	return nil
}

// SaldoGeral sums the saldo of ativa contas. Recomputed on every call.
func (s *Contas) SaldoGeral() core.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, c := range s.contas {
		if c.Ativa {
			total += c.Saldo.Cents
		}
	}
	return core.Money{Cents: total}
}

// Contas returns a snapshot of the mirror.
func (s *Contas) Contas() []core.Conta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]core.Conta, 0, len(s.contas)), s.contas...)
}

// Loading reports whether an operation is in flight.
func (s *Contas) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error recorded by the most recent operation, or nil.
// Every operation clears it before its own attempt.
func (s *Contas) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
