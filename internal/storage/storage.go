// Package storage provides the blob key-value store the storefront persists
// its state into. Carts and order blobs are stored as single JSON values per
// key; absence and corruption are both recoverable conditions for callers.
package storage

import "context"

// BlobStore is a key-value store for serialized state blobs.
//
// Get reports absence via the bool, never via an error, so callers can map
// a missing key straight to their empty-state variant.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
