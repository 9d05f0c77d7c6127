package llmprovider

import (
	"context"
	"errors"
	"fmt"
)

// Provider is one tier of the LLM fallback chain.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name identifies the provider ("gemini", "deepseek").
	Name() string

	// Model names the configured model.
	Model() string
}

var (
	// ErrAllProvidersFailed means every tier of the chain failed.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured means the chain is empty.
	ErrNoProvidersConfigured = errors.New("no providers configured")
)

// ProviderError tags an error with the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
