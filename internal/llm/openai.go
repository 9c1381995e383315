package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAICompleter implements the Completer interface using OpenAI's API.
type OpenAICompleter struct {
	client openai.Client
	config Config
}

// NewOpenAICompleter creates an OpenAI-backed completer.
// Returns an error if the API key is missing or invalid.
func NewOpenAICompleter(config Config) (*OpenAICompleter, error) {
	// Use config API key or fall back to environment variable
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key (set OPENAI_API_KEY or provide in config)", ErrInvalidConfig)
	}
	if config.Model == "" {
		return nil, fmt.Errorf("%w: missing model name", ErrInvalidConfig)
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAICompleter{
		client: client,
		config: config,
	}, nil
}

// Complete sends the system prompt and message sequence to OpenAI and
// returns the generated text.
func (o *OpenAICompleter) Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	if systemPrompt == "" {
		return "", fmt.Errorf("%w: system prompt cannot be empty", ErrInvalidConfig)
	}
	if len(messages) == 0 {
		return "", fmt.Errorf("%w: at least one message is required", ErrInvalidConfig)
	}

	chatMessages := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	chatMessages = append(chatMessages, openai.SystemMessage(systemPrompt))
	for _, msg := range messages {
		switch msg.Role {
		case RoleAssistant:
			chatMessages = append(chatMessages, openai.AssistantMessage(msg.Content))
		default:
			chatMessages = append(chatMessages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(o.config.Model),
		Messages: chatMessages,
	}

	// Set optional parameters if configured
	if o.config.Temperature > 0 {
		params.Temperature = openai.Float(float64(o.config.Temperature))
	}
	if o.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(o.config.MaxTokens))
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no response generated", ErrGenerationFailed)
	}

	return completion.Choices[0].Message.Content, nil
}
