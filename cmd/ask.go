package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fablemind/fablemind/internal/config"
)

var askCmd = &cobra.Command{
	Use:   "ask [character] [question]",
	Short: "Ask a character a question about the latest story",
	Long: `Ask a question answered in the voice of a named character.

The answer is grounded in the summary of the most recently ingested story.
If no story has been ingested since the service started, a no-story reply
is returned without contacting the language model.

Required environment variables:
  OPENAI_API_KEY     - OpenAI API key for embeddings and completions
  MONGO_URI          - MongoDB connection URI (default: mongodb://localhost:27017)
  MILVUS_ADDRESS     - Milvus server address (default: localhost:19530)

Examples:
  fablemind ask Dragon "What is your treasure?"
  fablemind ask "Old Sailor" "Where did the storm take you?"`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	character := args[0]
	question := args[1]
	ctx := cmd.Context()

	// Styling
	var (
		headerColor   = lipgloss.Color("#F780FF") // Bright pink
		questionColor = lipgloss.Color("#8BE9FD") // Cyan
		answerColor   = lipgloss.Color("#E9E9F4") // Light purple/white
	)

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true)

	questionStyle := lipgloss.NewStyle().
		Foreground(questionColor).
		Italic(true)

	answerStyle := lipgloss.NewStyle().
		Foreground(answerColor)

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("Question for %s:", character)))
	fmt.Println(questionStyle.Render(question))
	fmt.Println()

	cfg := config.FromEnv()
	logger := newLogger()

	svc, cleanup, err := buildService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	answer, err := svc.Answer(ctx, question, character)
	if err != nil {
		return fmt.Errorf("failed to generate answer: %w", err)
	}

	fmt.Println(headerStyle.Render("Answer:"))
	fmt.Println()
	fmt.Println(answerStyle.Render(strings.TrimSpace(answer)))
	fmt.Println()

	return nil
}
