// Package store provides durable persistence for stories. The durable store
// is the source of truth: the vector index is a disposable projection that
// can always be rebuilt from the records held here.
package store

import (
	"context"
	"errors"
)

// Common errors for durable store operations
var (
	ErrUnavailable   = errors.New("story store unavailable")
	ErrInvalidConfig = errors.New("invalid store configuration")
)

// Record is the durable representation of a story. Both fields are
// immutable once written; there is no re-summarization path.
type Record struct {
	OriginalText string `bson:"original_text" json:"original_text"`
	Summary      string `bson:"summary" json:"summary"`
}

// StoryStore defines the contract for durable story persistence.
// Implementations must not retry internally; I/O failures surface to the
// caller wrapped in ErrUnavailable.
type StoryStore interface {
	// Put durably persists a record under the given story ID,
	// overwriting any existing record with the same ID.
	Put(ctx context.Context, id string, rec Record) error

	// Get returns the record for the given story ID. The second return
	// value reports whether the record exists; absence is not an error.
	Get(ctx context.Context, id string) (Record, bool, error)

	// ListAll returns every stored record keyed by story ID.
	// No ordering is guaranteed.
	ListAll(ctx context.Context) (map[string]Record, error)

	// Close releases resources and closes connections.
	Close(ctx context.Context) error
}
