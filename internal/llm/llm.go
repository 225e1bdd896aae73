package llm

import (
	"context"
	"errors"
)

// Client abstracts chat-completion backends for the ingest and query pipeline.
type Client interface {
	// Summarize produces a short summary of the full extracted document text.
	Summarize(ctx context.Context, fullText string) (string, error)
	// Ask answers a question against an abstract, instructing the backend to
	// reply with structured JSON. The reply is returned verbatim and must be
	// treated as untrusted free-form text by callers.
	Ask(ctx context.Context, abstract, question string) (string, error)
}

var (
	// ErrUnavailable covers transport failures and timeouts.
	ErrUnavailable = errors.New("llm backend unavailable")
	// ErrBackend covers API-level failures (error payloads, empty completions).
	ErrBackend = errors.New("llm backend error")
)

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

func (PlaceholderClient) Summarize(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

func (PlaceholderClient) Ask(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}
