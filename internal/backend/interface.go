package backend

import (
	"context"

	"fincouples/internal/kvstore"
)

// CleanupFunc represents a cleanup function for backend resources
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function
type Result struct {
	Store   kvstore.Store
	Cleanup CleanupFunc
}

// Factory creates key-value stores based on configuration
type Factory interface {
	// CreateStore creates a store instance based on the provided config
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for store creation
type Config struct {
	// Backend type
	Type BackendType

	// SQLite specific
	SQLiteDBPath string

	// File backend specific
	DataDir string
}

// BackendType represents the type of storage backend
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	FileBackend   BackendType = "file"
	SQLiteBackend BackendType = "sqlite"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}
