package llm

import (
	_ "embed"
	"fmt"
	"strings"
)

var (
	//go:embed prompts/summarize.txt
	summarizePrompt string
	//go:embed prompts/question.txt
	questionPrompt string
)

// SummarizePrompt returns the system instruction for summarization.
func SummarizePrompt() string {
	return strings.TrimSpace(summarizePrompt)
}

// QuestionPrompt returns the system instruction demanding a structured JSON reply.
func QuestionPrompt() string {
	return strings.TrimSpace(questionPrompt)
}

// QuestionInput builds the user message pairing an abstract with a question.
func QuestionInput(abstract, question string) string {
	return fmt.Sprintf("Abstract:\n%s\n\nQuestion: %s", abstract, question)
}
