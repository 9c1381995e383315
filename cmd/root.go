package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fablemind",
	Short: "Fablemind - Story memory for character chat",
	Long: `Fablemind maintains a memory of short narrative stories for an
interactive character-chat application.

Each story is summarized, durably persisted, and embedded into a vector
index. Questions are answered in the voice of a named character, grounded
in the most recently added story.`,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
