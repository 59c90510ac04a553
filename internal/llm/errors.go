package llm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCredential indicates no provider has a configured API key.
	// Returned before any network call is made.
	ErrNoCredential = errors.New("no provider credential configured")

	// ErrInvalidCredential indicates the provider rejected the API key
	// (HTTP 401 or 403).
	ErrInvalidCredential = errors.New("invalid provider credential")

	// ErrRateLimited indicates the provider throttled or exhausted the
	// account quota (HTTP 429).
	ErrRateLimited = errors.New("provider rate limited")

	// ErrTransport indicates the provider could not be reached.
	ErrTransport = errors.New("provider unreachable")
)

// RateLimitError distinguishes a billing/quota exhaustion from plain
// throttling, since the user remedies differ.
type RateLimitError struct {
	Provider string
	Quota    bool
	Message  string
}

func (e *RateLimitError) Error() string {
	if e.Quota {
		return fmt.Sprintf("%s quota exceeded: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s rate limited: %s", e.Provider, e.Message)
}

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }

// ProviderError is any other non-2xx provider response.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Status, e.Message)
}

// classifyStatus maps a provider HTTP error response to the error
// taxonomy. apiMsg is the message extracted from the response body.
func classifyStatus(provider string, status int, apiMsg string) error {
	switch status {
	case 401, 403:
		return fmt.Errorf("%s: %s: %w", provider, apiMsg, ErrInvalidCredential)
	case 429:
		lower := strings.ToLower(apiMsg)
		quota := strings.Contains(lower, "quota") || strings.Contains(lower, "billing")
		return &RateLimitError{Provider: provider, Quota: quota, Message: apiMsg}
	default:
		return &ProviderError{Provider: provider, Status: status, Message: apiMsg}
	}
}

// UserMessage renders an error as the message shown in the terminal.
func UserMessage(err error) string {
	var rle *RateLimitError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoCredential):
		return "Nenhuma API configurada. Configure Groq (gratuito) ou Gemini (gratuito)"
	case errors.As(err, &rle):
		if rle.Quota {
			return "Cota excedida. Verifique seus créditos e plano de faturamento em: https://platform.openai.com/account/billing"
		}
		return "Muitas requisições. Aguarde alguns minutos e tente novamente."
	case errors.Is(err, ErrInvalidCredential):
		return "API key inválida ou expirada. Verifique suas configurações."
	case errors.Is(err, ErrTransport):
		return "Erro de conexão. Verifique sua internet e tente novamente."
	default:
		return err.Error()
	}
}
