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

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

// GeminiClient talks to the Google Gemini generateContent API. Gemini
// has no system role; the system message is prepended to the prompt.
// The API key travels as a query parameter, not a header.
type GeminiClient struct {
	endpoint string
	apiKey   string
	timeout  time.Duration
	http     *http.Client
	observer Observer
}

func NewGeminiClient(apiKey string, observer Observer) *GeminiClient {
	return NewGeminiClientAt(geminiEndpoint, apiKey, observer)
}

// NewGeminiClientAt allows pointing the client at a test server.
func NewGeminiClientAt(endpoint, apiKey string, observer Observer) *GeminiClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &GeminiClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		timeout:  30 * time.Second,
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

func (c *GeminiClient) Name() string { return "gemini" }

func (c *GeminiClient) Configured() bool { return c.apiKey != "" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	start := time.Now()

	if !c.Configured() {
		return "", fmt.Errorf("gemini: %w", ErrNoCredential)
	}

	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + prompt
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.doRequest(ctx, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	c.observer.OnCallComplete(CallEvent{
		Provider:  "gemini",
		Model:     "gemini-pro",
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *GeminiClient) doRequest(ctx context.Context, body geminiRequest) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := c.endpoint + "?key=" + c.apiKey
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini: %v: %w", err, ErrTransport)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", classifyStatus("gemini", httpResp.StatusCode, extractAPIMessage(respBody))
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{Provider: "gemini", Status: httpResp.StatusCode, Message: "empty candidates"}
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}

// ValidateCredential sends a one-word generation, the smallest request
// Gemini accepts with authentication.
func (c *GeminiClient) ValidateCredential(ctx context.Context) error {
	_, err := c.Complete(ctx, CompletionRequest{
		System:      "Você é um assistente útil.",
		Prompt:      "Teste",
		MaxTokens:   10,
		Temperature: 0,
	})
	return err
}
