package llm

import "time"

// Providers builds the standard provider set from cfg in fallback
// order: Groq first (generous free tier), then Gemini, with OpenAI as
// the paid last resort. The configured timeout applies to every
// provider.
func Providers(cfg Config, observer Observer) []Provider {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond

	groq := NewChatClient(ChatConfig{
		Name:    "groq",
		BaseURL: groqBaseURL,
		Model:   groqModel,
		APIKey:  cfg.GroqKey,
		Timeout: timeout,
	}, observer)

	gemini := NewGeminiClient(cfg.GeminiKey, observer)
	if timeout > 0 {
		gemini.timeout = timeout
	}

	openai := NewChatClient(ChatConfig{
		Name:    "openai",
		BaseURL: openAIBaseURL,
		Model:   openAIModel,
		APIKey:  cfg.OpenAIKey,
		Timeout: timeout,
	}, observer)

	return []Provider{groq, gemini, openai}
}
