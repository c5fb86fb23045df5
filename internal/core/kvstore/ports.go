package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key does not exist in the store.
// Callers use it to distinguish an empty collection from a transport failure.
var ErrKeyNotFound = errors.New("key not found")

// Store defines the durable key-value persistence port following hexagonal
// architecture. Each site collection is serialized as a single value under a
// fixed key and replaced wholesale on every mutation. The port can be
// implemented by different backends (Redis, an embedded database, a file store).
type Store interface {
	// Get retrieves a value from the store by key.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under the specified key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a value from the store by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close() error
}
