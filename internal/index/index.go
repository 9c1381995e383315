// Package index provides the embedding-backed vector index for story
// summaries. The index is a derived projection of the durable store: every
// entry can be discarded and rebuilt from stored records, so index writes
// never need to be transactional with store writes.
package index

import (
	"context"
	"errors"
)

// Common errors for vector index operations
var (
	ErrUnavailable     = errors.New("vector index unavailable")
	ErrEmbeddingFailed = errors.New("embedding generation failed")
	ErrInvalidConfig   = errors.New("invalid index configuration")
)

// MetadataOriginalStory is the metadata key carrying the raw story text
// alongside the indexed summary.
const MetadataOriginalStory = "original_story"

// StoryIndex defines the contract for the vector index. Upsert adds or
// overwrites exactly one entry keyed by story ID; the embedding for the
// document text is computed internally.
type StoryIndex interface {
	Upsert(ctx context.Context, id, document string, metadata map[string]string) error

	// Close releases resources and closes connections.
	Close() error
}
