package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fablemind/fablemind/internal/config"
)

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Ingest a story into memory",
	Long: `Ingest a story into memory.

The story is summarized, persisted, indexed, and becomes the latest story
used to ground answers. Reads from the given file, or from stdin when the
file argument is "-" or omitted.

Examples:
  fablemind add story.txt
  cat story.txt | fablemind add`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	text, err := readStoryInput(args)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("story text is empty")
	}

	ctx := cmd.Context()
	cfg := config.FromEnv()
	logger := newLogger()

	svc, cleanup, err := buildService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := svc.AddStory(ctx, text)
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}

// readStoryInput returns story text from the file argument or stdin.
func readStoryInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
