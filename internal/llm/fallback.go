package llm

import "context"

// FallbackClient tries each configured provider in order until one
// succeeds. With no configured provider it fails immediately with
// ErrNoCredential, before any network call.
type FallbackClient struct {
	providers []Provider
}

// NewFallbackClient builds a fallback chain. Provider order is the
// preference order; unconfigured providers are skipped.
func NewFallbackClient(providers ...Provider) *FallbackClient {
	return &FallbackClient{providers: providers}
}

func (c *FallbackClient) Name() string { return "fallback" }

func (c *FallbackClient) Configured() bool {
	for _, p := range c.providers {
		if p.Configured() {
			return true
		}
	}
	return false
}

func (c *FallbackClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var lastErr error
	for _, p := range c.providers {
		if !p.Configured() {
			continue
		}
		text, err := p.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr == nil {
		return "", ErrNoCredential
	}
	return "", lastErr
}

// ValidateCredential validates the first configured provider.
func (c *FallbackClient) ValidateCredential(ctx context.Context) error {
	for _, p := range c.providers {
		if p.Configured() {
			return p.ValidateCredential(ctx)
		}
	}
	return ErrNoCredential
}
