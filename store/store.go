// Package store provides durable key-value storage backends.
//
// The store is shared by the translation cache, the offline pack manager,
// and app-level data (settings, history), all namespaced by key prefix.
// Callers must only touch keys under their own prefix.
package store

import "context"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "store: key not found" }

// KeyValueStore is the interface for durable string-keyed storage.
// All operations may fail with an I/O error; Get returns ErrNotFound
// when the key is absent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	ListKeys(ctx context.Context) ([]string, error)
	DeleteMany(ctx context.Context, keys []string) error
}
