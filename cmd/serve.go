package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fablemind/fablemind/api"
	"github.com/fablemind/fablemind/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the story memory HTTP service",
	Long: `Run the story memory service.

On startup the vector index is rehydrated from the durable store so that
every persisted story is indexed; a rehydration failure aborts startup.
The service then accepts story ingestion, character extraction, and
character-voiced answering over HTTP.

Required environment variables:
  OPENAI_API_KEY     - OpenAI API key for embeddings and completions
  MONGO_URI          - MongoDB connection URI (default: mongodb://localhost:27017)
  MILVUS_ADDRESS     - Milvus server address (default: localhost:19530)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	logger := newLogger()

	svc, cleanup, err := buildService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	// The process must not serve requests with an unknown index state.
	if err := svc.Rehydrate(ctx); err != nil {
		return fmt.Errorf("rehydration failed: %w", err)
	}

	server := api.NewServer(api.Config{ListenAddr: cfg.ListenAddr}, svc, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down")
		return server.Shutdown()
	}
}
