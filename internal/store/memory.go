package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process StoryStore for tests and local development.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory story store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Put stores a record under the given story ID.
func (s *MemoryStore) Put(ctx context.Context, id string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = rec
	return nil
}

// Get returns the record for the given story ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	return rec, ok, nil
}

// ListAll returns a copy of every stored record keyed by story ID.
func (s *MemoryStore) ListAll(ctx context.Context) (map[string]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make(map[string]Record, len(s.records))
	for id, rec := range s.records {
		records[id] = rec
	}
	return records, nil
}

// Delete removes the record for the given story ID, if present.
// Not part of the StoryStore contract; used to simulate dangling pointers.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
