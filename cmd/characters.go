package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fablemind/fablemind/internal/config"
)

var charactersCmd = &cobra.Command{
	Use:   "characters [file]",
	Short: "Extract character names from a story",
	Long: `Extract the proper names of characters from a story.

Prints the names as a comma-separated list. Reads from the given file, or
from stdin when the file argument is "-" or omitted. The story is not
ingested; this operation has no stored side effects.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCharacters,
}

func init() {
	rootCmd.AddCommand(charactersCmd)
}

func runCharacters(cmd *cobra.Command, args []string) error {
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

	names, err := svc.ExtractCharacterNames(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to extract characters: %w", err)
	}

	fmt.Println(names)
	return nil
}
