package llm

import (
	"os"
	"strconv"
)

// Config holds credentials and knobs for the LLM subsystem. Keys come
// from the environment first; empty entries may be overlaid with keys
// from the settings store at wiring time.
type Config struct {
	OpenAIKey string
	GroqKey   string
	GeminiKey string
	LogCalls  bool
	TimeoutMs int
}

// DefaultConfig returns a Config with no credentials.
func DefaultConfig() Config {
	return Config{TimeoutMs: 30000}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RESOLVAI_OPENAI_API_KEY"); v != "" {
		cfg.OpenAIKey = v
	}
	if v := os.Getenv("RESOLVAI_GROQ_API_KEY"); v != "" {
		cfg.GroqKey = v
	}
	if v := os.Getenv("RESOLVAI_GEMINI_API_KEY"); v != "" {
		cfg.GeminiKey = v
	}
	if v := os.Getenv("RESOLVAI_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RESOLVAI_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}

// Key returns the configured key for a provider name, or "".
func (c Config) Key(provider string) string {
	switch provider {
	case "openai":
		return c.OpenAIKey
	case "groq":
		return c.GroqKey
	case "gemini":
		return c.GeminiKey
	default:
		return ""
	}
}

// SetKey sets the key for a provider name in place.
func (c *Config) SetKey(provider, key string) {
	switch provider {
	case "openai":
		c.OpenAIKey = key
	case "groq":
		c.GroqKey = key
	case "gemini":
		c.GeminiKey = key
	}
}
