package artifact

import (
	"context"
	"os"
)

// ErrNotFound is returned when an artifact does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for persisting immutable run artifacts.
type Store interface {
	// Put writes an artifact atomically, replacing any existing one.
	Put(ctx context.Context, name string, data []byte) error

	// Get reads an artifact in full.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes an artifact. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the sorted names of all artifacts with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
