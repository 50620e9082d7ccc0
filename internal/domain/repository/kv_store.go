package repository

import "context"

// KVStore is the durable string key-value store backing carts, order
// histories, identities and user settings. It is read once at startup and
// written on every mutation; the last writer wins.
type KVStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}
