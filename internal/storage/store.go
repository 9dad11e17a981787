package storage

import "context"

// Store is a single-slot key-value durable store. The tracker keeps its
// whole dataset under one versioned key; a schema-breaking change must use a
// new key so older layouts are never misread.
type Store interface {
	// Load returns the value for key. ok is false when the key has never
	// been written; err is reserved for backend failures.
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Save durably writes the value for key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error
}
