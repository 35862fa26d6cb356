// Package storage is the host persistence capability: get/set of serialized
// blobs under fixed keys. The note store is written through it in full on
// every mutation.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound reports that a key has never been written
var ErrNotFound = errors.New("key not found")

// KV is the blob storage collaborator injected into the note store
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
