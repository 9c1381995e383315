package llm

import "fmt"

// System prompts for the three call shapes used by the story memory core.
const (
	summarizeSystemPrompt = "You are a concise summarizer. Summarize the story you are given " +
		"in one or two sentences, keeping the characters and the central event. " +
		"Return only the summary text."

	extractSystemPrompt = "You extract the proper names of characters from a story. " +
		"Return only the names, comma-separated, with no extra text."

	answerSystemPrompt = "You are an assistant for an interactive character chat. " +
		"You have access to summarized story memories and answer questions in the " +
		"voice of a named character, grounded in the memory you are given."
)

// SummarizePrompt builds the summarization call shape for a raw story.
func SummarizePrompt(storyText string) (string, []Message) {
	return summarizeSystemPrompt, []Message{
		{Role: RoleUser, Content: storyText},
	}
}

// ExtractCharactersPrompt builds the character extraction call shape.
func ExtractCharactersPrompt(storyText string) (string, []Message) {
	return extractSystemPrompt, []Message{
		{Role: RoleUser, Content: storyText},
	}
}

// AnswerPrompt builds the grounded-answering call shape: the latest story's
// summary as context, then a role-play instruction carrying the literal
// user question.
func AnswerPrompt(summary, characterName, question string) (string, []Message) {
	return answerSystemPrompt, []Message{
		{Role: RoleUser, Content: fmt.Sprintf("Story memory:\n%s", summary)},
		{Role: RoleUser, Content: fmt.Sprintf(
			"Answer in the voice of %s. Question: %s", characterName, question)},
	}
}
