package openai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"research-backend/internal/llm"
)

const defaultTemperature = 0.5

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	api              *openai.Client
	model            string
	summaryMaxTokens int
	answerMaxTokens  int
}

// NewClient constructs a new OpenAI client. The answer cap must exceed the
// summary cap so structured replies are never truncated harder than summaries.
func NewClient(apiKey, model string, summaryMaxTokens, answerMaxTokens int) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if summaryMaxTokens <= 0 {
		summaryMaxTokens = 100
	}
	if answerMaxTokens <= summaryMaxTokens {
		answerMaxTokens = summaryMaxTokens * 4
	}

	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		api:              openai.NewClientWithConfig(cfg),
		model:            model,
		summaryMaxTokens: summaryMaxTokens,
		answerMaxTokens:  answerMaxTokens,
	}, nil
}

// Summarize sends the full extracted text with the summarization instruction.
func (c *Client) Summarize(ctx context.Context, fullText string) (string, error) {
	return c.complete(ctx, llm.SummarizePrompt(), fullText, c.summaryMaxTokens)
}

// Ask requests a structured JSON reply for a question against an abstract.
// The backend is not trusted to honor the JSON instruction; the raw text is
// returned as-is for downstream normalization.
func (c *Client) Ask(ctx context.Context, abstract, question string) (string, error) {
	return c.complete(ctx, llm.QuestionPrompt(), llm.QuestionInput(abstract, question), c.answerMaxTokens)
}

func (c *Client) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return "", classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response missing choices", llm.ErrBackend)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: response empty content", llm.ErrBackend)
	}

	logUsage(c.model, resp.Usage)
	return content, nil
}

// classifyError maps API-level failures to ErrBackend and everything else
// (transport, timeout, cancellation) to ErrUnavailable.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %s (%s)", llm.ErrBackend, apiErr.Message, apiErr.Type)
	}
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
		return fmt.Errorf("%w: request timeout: %v", llm.ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
}

func logUsage(model string, usage openai.Usage) {
	if usage.TotalTokens == 0 {
		return
	}
	log.Printf("llm response model=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d",
		model, usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
}

var _ llm.Client = (*Client)(nil)
