package storage

import "context"

// MemoryStore is an in-process Store, mainly for tests that want independent
// trackers against independent backends without touching disk.
type MemoryStore struct {
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[string][]byte{}}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.slots[key] = v
	return nil
}
