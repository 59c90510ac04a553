package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider scripts a single provider for fallback tests.
type fakeProvider struct {
	name       string
	configured bool
	text       string
	err        error
	calls      int
}

func (f *fakeProvider) Name() string     { return f.name }
func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Complete(context.Context, CompletionRequest) (string, error) {
	f.calls++
	return f.text, f.err
}

func (f *fakeProvider) ValidateCredential(context.Context) error {
	f.calls++
	return f.err
}

func TestFallback_FirstConfiguredProviderWins(t *testing.T) {
	groq := &fakeProvider{name: "groq", configured: true, text: "resposta groq"}
	gemini := &fakeProvider{name: "gemini", configured: true, text: "resposta gemini"}

	chain := NewFallbackClient(groq, gemini)
	text, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "x"})

	require.NoError(t, err)
	assert.Equal(t, "resposta groq", text)
	assert.Equal(t, 0, gemini.calls)
}

func TestFallback_SkipsUnconfigured(t *testing.T) {
	groq := &fakeProvider{name: "groq", configured: false}
	gemini := &fakeProvider{name: "gemini", configured: true, text: "resposta gemini"}

	chain := NewFallbackClient(groq, gemini)
	text, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "x"})

	require.NoError(t, err)
	assert.Equal(t, "resposta gemini", text)
	assert.Equal(t, 0, groq.calls)
}

func TestFallback_AdvancesOnFailure(t *testing.T) {
	groq := &fakeProvider{name: "groq", configured: true, err: &RateLimitError{Provider: "groq", Message: "slow down"}}
	gemini := &fakeProvider{name: "gemini", configured: true, text: "resposta gemini"}

	chain := NewFallbackClient(groq, gemini)
	text, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "x"})

	require.NoError(t, err)
	assert.Equal(t, "resposta gemini", text)
	assert.Equal(t, 1, groq.calls)
}

func TestFallback_ReturnsLastErrorWhenAllFail(t *testing.T) {
	groq := &fakeProvider{name: "groq", configured: true, err: errors.New("groq down")}
	gemini := &fakeProvider{name: "gemini", configured: true, err: classifyStatus("gemini", 401, "API key not valid")}

	chain := NewFallbackClient(groq, gemini)
	_, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestFallback_NoCredentialWithoutNetwork(t *testing.T) {
	groq := &fakeProvider{name: "groq"}
	gemini := &fakeProvider{name: "gemini"}
	openai := &fakeProvider{name: "openai"}

	chain := NewFallbackClient(groq, gemini, openai)
	assert.False(t, chain.Configured())

	_, err := chain.Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.Equal(t, 0, groq.calls+gemini.calls+openai.calls)
}

func TestFallback_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	groq := &fakeProvider{name: "groq", configured: true, err: context.Canceled}
	gemini := &fakeProvider{name: "gemini", configured: true, text: "nunca"}

	cancel()
	_, err := NewFallbackClient(groq, gemini).Complete(ctx, CompletionRequest{Prompt: "x"})

	assert.Error(t, err)
	assert.Equal(t, 0, gemini.calls)
}

func TestFallback_ValidateUsesFirstConfigured(t *testing.T) {
	groq := &fakeProvider{name: "groq"}
	gemini := &fakeProvider{name: "gemini", configured: true}

	chain := NewFallbackClient(groq, gemini)
	require.NoError(t, chain.ValidateCredential(context.Background()))
	assert.Equal(t, 1, gemini.calls)
}
