// Package storage adapts the raw key-value store into typed collections.
// Each collection is one JSON-serialized ordered list under a dedicated
// key; every operation above this layer loads the full list, mutates it
// and writes it back.
//
// Storage failures never cross this boundary: a missing or corrupted
// document reads as an empty collection, and a failed write is logged
// and swallowed. Callers cannot distinguish "empty" from "unreadable",
// which mirrors the intended recovery behavior.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"fincouples/internal/kvstore"
)

// Storage keys for the two persisted collections.
const (
	ContasKey     = "fincouples_contas"
	CategoriasKey = "fincouples_categorias"
)

type Collection[T any] struct {
	store kvstore.Store
	key   string
}

func NewCollection[T any](store kvstore.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Load returns the stored list, or an empty one when the key is absent
// or the document cannot be deserialized.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, ok, err := c.store.GetItem(ctx, c.key)
	if err != nil {
		slog.WarnContext(ctx, "Failed to read collection, treating as empty",
			"key", c.key, "error", err)
		return nil
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.WarnContext(ctx, "Failed to decode collection, treating as empty",
			"key", c.key, "error", err)
		return nil
	}
	return items
}

// Save serializes the list and writes it under the collection key.
// Failures are logged and swallowed; after a failed save the in-memory
// state and the durable store may diverge until the next write.
func (c *Collection[T]) Save(ctx context.Context, items []T) {
	if items == nil {
		// Persist an empty array, not JSON null.
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode collection",
			"key", c.key, "error", err)
		return
	}

	if err := c.store.SetItem(ctx, c.key, string(data)); err != nil {
		slog.ErrorContext(ctx, "Failed to save collection",
			"key", c.key, "items", len(items), "error", err)
	}
}
