package index

import (
	"context"
	"testing"
)

func TestMemoryIndexUpsertAndGet(t *testing.T) {
	idx := NewMemoryIndex()
	ctx := context.Background()

	metadata := map[string]string{MetadataOriginalStory: "the original text"}
	if err := idx.Upsert(ctx, "story-1", "the summary", metadata); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	entry, ok := idx.Get("story-1")
	if !ok {
		t.Fatal("Expected entry for story-1")
	}
	if entry.Document != "the summary" {
		t.Errorf("Expected document %q, got %q", "the summary", entry.Document)
	}
	if entry.Metadata[MetadataOriginalStory] != "the original text" {
		t.Errorf("Expected original story metadata, got %q", entry.Metadata[MetadataOriginalStory])
	}
}

func TestMemoryIndexUpsertOverwritesByID(t *testing.T) {
	idx := NewMemoryIndex()
	ctx := context.Background()

	_ = idx.Upsert(ctx, "story-1", "old", nil)
	_ = idx.Upsert(ctx, "story-1", "new", nil)

	if idx.Len() != 1 {
		t.Fatalf("Expected 1 entry after repeated upsert, got %d", idx.Len())
	}
	entry, _ := idx.Get("story-1")
	if entry.Document != "new" {
		t.Errorf("Expected overwritten document, got %q", entry.Document)
	}
}

func TestMemoryIndexCopiesMetadata(t *testing.T) {
	idx := NewMemoryIndex()
	metadata := map[string]string{MetadataOriginalStory: "original"}

	_ = idx.Upsert(context.Background(), "story-1", "doc", metadata)
	metadata[MetadataOriginalStory] = "mutated"

	entry, _ := idx.Get("story-1")
	if entry.Metadata[MetadataOriginalStory] != "original" {
		t.Error("Expected stored metadata unaffected by caller mutation")
	}
}
