package llm

import "context"

// CompletionRequest holds the parameters for a single generation call.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Provider is a single LLM backend.
type Provider interface {
	// Name identifies the provider ("openai", "groq", "gemini").
	Name() string

	// Configured reports whether the provider has an API key. A
	// provider without one is skipped without any network call.
	Configured() bool

	// Complete sends the prompt and returns the trimmed text response.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// ValidateCredential checks the stored API key against the live
	// API without generating user-visible output.
	ValidateCredential(ctx context.Context) error
}
