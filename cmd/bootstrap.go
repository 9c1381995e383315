package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/fablemind/fablemind/internal/config"
	"github.com/fablemind/fablemind/internal/index"
	"github.com/fablemind/fablemind/internal/llm"
	"github.com/fablemind/fablemind/internal/memory"
	"github.com/fablemind/fablemind/internal/store"
)

// newLogger builds the service logger used by all commands.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fablemind",
	})
}

// buildService connects the durable store, the vector index, and the LLM,
// and wires them into a memory service. The returned cleanup function
// closes all connections.
func buildService(ctx context.Context, cfg config.Config, logger *log.Logger) (*memory.Service, func(), error) {
	st, err := store.NewMongoStore(ctx, cfg.Mongo)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to story store: %w", err)
	}

	embedder, err := index.NewOpenAIEmbedder(cfg.EmbeddingModel, cfg.EmbeddingDimension)
	if err != nil {
		_ = st.Close(ctx)
		return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	idx, err := index.NewMilvusIndex(ctx, cfg.Milvus, embedder)
	if err != nil {
		_ = st.Close(ctx)
		return nil, nil, fmt.Errorf("failed to attach vector index: %w", err)
	}

	completer, err := llm.NewOpenAICompleter(cfg.LLM)
	if err != nil {
		_ = idx.Close()
		_ = st.Close(ctx)
		return nil, nil, fmt.Errorf("failed to create LLM: %w", err)
	}

	cleanup := func() {
		_ = idx.Close()
		_ = st.Close(context.Background())
	}

	return memory.NewService(st, idx, completer, logger), cleanup, nil
}
