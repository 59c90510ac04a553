package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChatClient(name, baseURL string) *ChatClient {
	return NewChatClient(ChatConfig{
		Name:    name,
		BaseURL: baseURL,
		Model:   groqModel,
		APIKey:  "gsk-test-key",
	}, NoopObserver{})
}

func chatSuccessHandler(t *testing.T, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer gsk-test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, groqModel, req.Model)
		assert.InDelta(t, 0.7, req.Temperature, 0.001)

		resp := chatResponse{Model: req.Model}
		resp.Choices = []struct {
			Message chatMessage `json:"message"`
		}{{Message: chatMessage{Role: "assistant", Content: content}}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func TestChatClient_Complete_Success(t *testing.T) {
	srv := httptest.NewServer(chatSuccessHandler(t, "  Por que o processo não foi revisado?  "))
	defer srv.Close()

	client := testChatClient("groq", srv.URL)
	text, err := client.Complete(context.Background(), CompletionRequest{
		System:      "Você é um especialista em análise de causa raiz.",
		Prompt:      "Sugira o próximo porquê.",
		MaxTokens:   150,
		Temperature: 0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "Por que o processo não foi revisado?", text)
}

func TestChatClient_Complete_SystemMessageOrder(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	client := testChatClient("groq", srv.URL)
	_, err := client.Complete(context.Background(), CompletionRequest{
		System: "sistema", Prompt: "pergunta", MaxTokens: 100, Temperature: 0.7,
	})

	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "sistema", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
}

func TestChatClient_Complete_NoCredential(t *testing.T) {
	client := NewChatClient(ChatConfig{Name: "groq", BaseURL: "http://unused", Model: groqModel}, NoopObserver{})

	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestChatClient_Complete_InvalidCredential(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
		}))

		client := testChatClient("openai", srv.URL)
		_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredential)
		srv.Close()
	}
}

func TestChatClient_Complete_RateLimitVsQuota(t *testing.T) {
	tests := []struct {
		name    string
		message string
		quota   bool
	}{
		{"throttle", "Rate limit reached for requests", false},
		{"quota", "You exceeded your current quota, please check your plan and billing details", true},
		{"billing", "billing hard limit has been reached", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": tt.message}})
			}))
			defer srv.Close()

			client := testChatClient("openai", srv.URL)
			_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "x"})

			assert.ErrorIs(t, err, ErrRateLimited)
			var rle *RateLimitError
			require.ErrorAs(t, err, &rle)
			assert.Equal(t, tt.quota, rle.Quota)
		})
	}
}

func TestChatClient_Complete_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"The server had an error"}}`))
	}))
	defer srv.Close()

	client := testChatClient("groq", srv.URL)
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "x"})

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "groq", pe.Provider)
	assert.Equal(t, http.StatusInternalServerError, pe.Status)
}

func TestChatClient_Complete_Transport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client := testChatClient("groq", srv.URL)
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestChatClient_ValidateCredential_ModelsEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer gsk-test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := testChatClient("groq", srv.URL)
	assert.NoError(t, client.ValidateCredential(context.Background()))
}

func TestChatClient_ValidateCredential_OpenAIFormat(t *testing.T) {
	// Malformed OpenAI keys are rejected before any network call.
	client := NewChatClient(ChatConfig{
		Name:    "openai",
		BaseURL: "http://unused",
		Model:   openAIModel,
		APIKey:  "short",
	}, NoopObserver{})

	err := client.ValidateCredential(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestChatClient_ObserverReceivesEvents(t *testing.T) {
	srv := httptest.NewServer(chatSuccessHandler(t, "ok"))
	defer srv.Close()

	var events []CallEvent
	client := NewChatClient(ChatConfig{
		Name:    "groq",
		BaseURL: srv.URL,
		Model:   groqModel,
		APIKey:  "gsk-test-key",
	}, observerFunc(func(ev CallEvent) { events = append(events, ev) }))

	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "x", Temperature: 0.7})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "groq", events[0].Provider)
	assert.True(t, events[0].Success)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(ev CallEvent) { f(ev) }
