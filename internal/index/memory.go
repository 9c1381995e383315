package index

import (
	"context"
	"sync"
)

// Entry is one indexed record as held by the in-memory index.
type Entry struct {
	Document string
	Metadata map[string]string
}

// MemoryIndex is an in-process StoryIndex for tests and local development.
// It stores documents without computing embeddings.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryIndex creates an empty in-memory index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{entries: make(map[string]Entry)}
}

// Upsert adds or overwrites one entry keyed by story ID.
func (m *MemoryIndex) Upsert(ctx context.Context, id, document string, metadata map[string]string) error {
	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = Entry{Document: document, Metadata: meta}
	return nil
}

// Get returns the entry for the given story ID.
func (m *MemoryIndex) Get(id string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[id]
	return entry, ok
}

// Len returns the number of indexed entries.
func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close is a no-op for the in-memory index.
func (m *MemoryIndex) Close() error {
	return nil
}
