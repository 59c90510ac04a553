package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	openAIBaseURL = "https://api.openai.com/v1"
	groqBaseURL   = "https://api.groq.com/openai/v1"

	openAIModel = "gpt-3.5-turbo"
	groqModel   = "llama-3.1-8b-instant"
)

// ChatConfig parameterizes an OpenAI-compatible chat completions client.
type ChatConfig struct {
	Name    string
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// ChatClient talks to any OpenAI-compatible chat completions API.
// Groq exposes the same wire protocol under its own base URL, so both
// providers share this implementation.
type ChatClient struct {
	cfg      ChatConfig
	http     *http.Client
	observer Observer
}

// NewOpenAIClient creates the OpenAI provider.
func NewOpenAIClient(apiKey string, observer Observer) *ChatClient {
	return NewChatClient(ChatConfig{
		Name:    "openai",
		BaseURL: openAIBaseURL,
		Model:   openAIModel,
		APIKey:  apiKey,
	}, observer)
}

// NewGroqClient creates the Groq provider.
func NewGroqClient(apiKey string, observer Observer) *ChatClient {
	return NewChatClient(ChatConfig{
		Name:    "groq",
		BaseURL: groqBaseURL,
		Model:   groqModel,
		APIKey:  apiKey,
	}, observer)
}

func NewChatClient(cfg ChatConfig, observer Observer) *ChatClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &ChatClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *ChatClient) Name() string { return c.cfg.Name }

func (c *ChatClient) Configured() bool { return c.cfg.APIKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// apiErrorBody is the error envelope shared by OpenAI-compatible APIs
// and Gemini.
type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *ChatClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	start := time.Now()

	if !c.Configured() {
		return "", fmt.Errorf("%s: %w", c.cfg.Name, ErrNoCredential)
	}

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body := chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	text, err := c.doRequest(ctx, body)
	c.observer.OnCallComplete(CallEvent{
		Provider:  c.cfg.Name,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *ChatClient) doRequest(ctx context.Context, body chatRequest) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%s: %v: %w", c.cfg.Name, err, ErrTransport)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", classifyStatus(c.cfg.Name, httpResp.StatusCode, extractAPIMessage(respBody))
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: c.cfg.Name, Status: httpResp.StatusCode, Message: "empty choices"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// ValidateCredential checks the key against GET /models, the cheapest
// authenticated endpoint. OpenAI keys are format-checked first.
func (c *ChatClient) ValidateCredential(ctx context.Context) error {
	if !c.Configured() {
		return fmt.Errorf("%s: %w", c.cfg.Name, ErrNoCredential)
	}
	if c.cfg.Name == "openai" {
		key := strings.TrimSpace(c.cfg.APIKey)
		if !strings.HasPrefix(key, "sk-") || len(key) < 20 {
			return fmt.Errorf("%s: malformed key: %w", c.cfg.Name, ErrInvalidCredential)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	url := c.cfg.BaseURL + "/models"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", c.cfg.Name, err, ErrTransport)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		return classifyStatus(c.cfg.Name, httpResp.StatusCode, extractAPIMessage(respBody))
	}
	return nil
}

func extractAPIMessage(body []byte) string {
	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(body))
}
