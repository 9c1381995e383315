// Package memory implements the story memory pipeline: it keeps the durable
// store and the vector index consistent, ingests new stories through a
// summarization step, and serves character-voiced answers grounded in the
// most recently ingested story.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fablemind/fablemind/internal/index"
	"github.com/fablemind/fablemind/internal/llm"
	"github.com/fablemind/fablemind/internal/store"
)

// ErrIngestionFailed wraps any failure encountered while ingesting a story.
var ErrIngestionFailed = errors.New("story ingestion failed")

// NoStoryReply is returned by Answer when no story has been ingested yet,
// or when the latest-story pointer no longer resolves to a stored record.
// It is a defined reply, not an error.
const NoStoryReply = "I don't have a story in memory yet. Tell me one first."

// Service is the story memory core. The durable store is the source of
// truth; the vector index is a derived projection; the latest-story pointer
// is process-local and is written only by AddStory.
type Service struct {
	store     store.StoryStore
	index     index.StoryIndex
	completer llm.Completer
	logger    *log.Logger

	mu       sync.RWMutex
	latestID string
}

// NewService wires the story memory pipeline. A nil logger falls back to
// the package default.
func NewService(st store.StoryStore, idx index.StoryIndex, completer llm.Completer, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		store:     st,
		index:     idx,
		completer: completer,
		logger:    logger,
	}
}

// Rehydrate rebuilds the vector index from the durable store's full
// contents, one record at a time. Upserts are keyed by story ID, so
// rerunning it is always safe. Callers treat a startup failure as fatal:
// the service must not serve requests with an unknown index state.
func (s *Service) Rehydrate(ctx context.Context) error {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list stored stories: %w", err)
	}
	if len(records) == 0 {
		s.logger.Info("no stored stories to rehydrate")
		return nil
	}

	for id, rec := range records {
		metadata := map[string]string{index.MetadataOriginalStory: rec.OriginalText}
		if err := s.index.Upsert(ctx, id, rec.Summary, metadata); err != nil {
			return fmt.Errorf("failed to index story %s: %w", id, err)
		}
	}

	s.logger.Info("vector index rehydrated", "stories", len(records))
	return nil
}

// AddStory ingests a raw story: it is summarized, indexed, durably
// persisted, and becomes the latest story. Returns the allocated story ID.
//
// The index is written before the store on purpose: if the index write
// succeeds and the store write fails, the source of truth never reflects
// the story and the index entry is a harmless orphan that rehydration will
// not resurrect. No partial rollback is attempted.
func (s *Service) AddStory(ctx context.Context, originalText string) (string, error) {
	system, messages := llm.SummarizePrompt(originalText)
	raw, err := s.completer.Complete(ctx, system, messages)
	if err != nil {
		return "", fmt.Errorf("%w: summarization: %w", ErrIngestionFailed, err)
	}
	summary := strings.TrimSpace(raw)

	id := newStoryID()

	metadata := map[string]string{index.MetadataOriginalStory: originalText}
	if err := s.index.Upsert(ctx, id, summary, metadata); err != nil {
		return "", fmt.Errorf("%w: indexing: %w", ErrIngestionFailed, err)
	}

	rec := store.Record{OriginalText: originalText, Summary: summary}
	if err := s.store.Put(ctx, id, rec); err != nil {
		return "", fmt.Errorf("%w: persisting: %w", ErrIngestionFailed, err)
	}

	s.setLatest(id)
	s.logger.Info("story ingested", "id", id)
	return id, nil
}

// Answer produces a character-voiced answer to the user's question,
// grounded in the summary of the most recently ingested story. When no
// story is available it returns NoStoryReply without contacting any
// external service. The model's response is returned unmodified.
func (s *Service) Answer(ctx context.Context, question, characterName string) (string, error) {
	id := s.Latest()
	if id == "" {
		return NoStoryReply, nil
	}

	rec, found, err := s.store.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to load story %s: %w", id, err)
	}
	if !found {
		// Pointer is dangling; treat the same as having no story.
		return NoStoryReply, nil
	}

	system, messages := llm.AnswerPrompt(rec.Summary, characterName, question)
	return s.completer.Complete(ctx, system, messages)
}

// ExtractCharacterNames returns the proper character names found in a raw
// story as a comma-joined list. The model output is a best-effort
// heuristic: tokens are trimmed and empty ones dropped, but no further
// validation is applied. Output that trims to nothing yields "".
func (s *Service) ExtractCharacterNames(ctx context.Context, originalText string) (string, error) {
	system, messages := llm.ExtractCharactersPrompt(originalText)
	raw, err := s.completer.Complete(ctx, system, messages)
	if err != nil {
		return "", err
	}
	return normalizeNameList(raw), nil
}

// Latest returns the ID of the most recently ingested story, or "" when no
// story has been ingested since the process started.
func (s *Service) Latest() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latestID
}

func (s *Service) setLatest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latestID = id
}

// normalizeNameList splits model output on commas, trims each token, drops
// empty tokens, and rejoins with ", ".
func normalizeNameList(raw string) string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// newStoryID allocates a unique, time-ordered story identifier.
func newStoryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "story-" + id.String()
}
