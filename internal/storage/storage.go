// Package storage provides the persistent key-value store Cofrinho keeps
// its collections in.
package storage

import "context"

// KV is an opaque key-value store. Collections are stored as whole JSON
// blobs under one key each, read in full and rewritten in full.
type KV interface {
	// Get returns the value for key. The second return value reports
	// whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
