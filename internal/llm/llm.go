// Package llm provides the generative text service adapter used for
// summarization, character extraction, and character-voiced answering.
// It defines a provider-agnostic completion interface with a concrete
// OpenAI implementation and a deterministic mock for testing.
package llm

import (
	"context"
	"errors"
)

var (
	ErrGenerationFailed = errors.New("text generation failed")
	ErrInvalidConfig    = errors.New("invalid LLM configuration")
)

// Message roles accepted by Complete.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in the ordered message sequence of a completion call.
type Message struct {
	Role    string
	Content string
}

// Completer defines the interface for single-shot, stateless text
// completion. Implementations must be thread-safe.
type Completer interface {
	// Complete sends a system prompt and an ordered message sequence to
	// the model and returns the generated text.
	Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error)
}

// Config holds common configuration options for LLM providers.
type Config struct {
	// Model specifies the model identifier (e.g., "gpt-4o")
	Model string

	// Temperature controls randomness (0.0 = deterministic, 2.0 = very random)
	Temperature float32

	// MaxTokens limits the response length (0 = use provider default)
	MaxTokens int

	// APIKey is the authentication key for the provider
	APIKey string
}

// DefaultConfig returns sensible defaults for story memory generation.
func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4o",
		Temperature: 0, // model default
		MaxTokens:   1000,
	}
}
