package service

import (
	"context"
	"fmt"

	"github.com/resolvai/resolvai/internal/store"
)

// Providers that may have a stored credential.
var knownProviders = map[string]bool{
	"openai": true,
	"groq":   true,
	"gemini": true,
}

var knownThemes = map[string]bool{
	"dark":  true,
	"light": true,
}

type settingsService struct {
	settings store.SettingsStore
}

func NewSettingsService(settings store.SettingsStore) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Theme(ctx context.Context) (string, error) {
	return s.settings.Theme(ctx)
}

func (s *settingsService) SetTheme(ctx context.Context, theme string) error {
	if !knownThemes[theme] {
		return fmt.Errorf("unknown theme %q (expected dark or light)", theme)
	}
	return s.settings.SetTheme(ctx, theme)
}

func (s *settingsService) Credential(ctx context.Context, provider string) (string, error) {
	if !knownProviders[provider] {
		return "", fmt.Errorf("unknown provider %q", provider)
	}
	return s.settings.Credential(ctx, provider)
}

func (s *settingsService) SetCredential(ctx context.Context, provider, key string) error {
	if !knownProviders[provider] {
		return fmt.Errorf("unknown provider %q", provider)
	}
	if key == "" {
		return fmt.Errorf("empty credential for provider %q", provider)
	}
	return s.settings.SetCredential(ctx, provider, key)
}

func (s *settingsService) RemoveCredential(ctx context.Context, provider string) error {
	if !knownProviders[provider] {
		return fmt.Errorf("unknown provider %q", provider)
	}
	return s.settings.RemoveCredential(ctx, provider)
}
