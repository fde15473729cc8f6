// Package kvstore defines the durable key-value store port behind the
// collection storage adapter. The store keeps whole serialized documents
// under string keys; backends decide how the bytes reach disk.
package kvstore

import "context"

// Store is the port for outbound persistence adapters.
type Store interface {
	// GetItem returns the raw value stored under key. ok is false when
	// the key has never been written.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem writes value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
}

// Closer is implemented by stores that hold external resources.
type Closer interface {
	Close() error
}
