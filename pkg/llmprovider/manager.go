package llmprovider

import (
	"context"
	"fmt"
	"time"

	"personal-agent/pkg/log"
)

// Manager walks the provider chain in priority order, retrying each tier
// before falling back to the next.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config tunes the fallback chain.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // bounds the whole chain, not one call
}

// NewManager creates a Manager over providers already sorted by priority.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent tries each provider in order and returns the first
// successful response. With fallback disabled only the first provider
// is consulted.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("fallback chain aborted: %w", err)
		}

		resp, err := m.tryProvider(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logger.Warnf(ctx, "LLM generation failed on %s (%s): %v", provider.Name(), provider.Model(), err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// tryProvider retries a single provider with linearly growing delay.
func (m *Manager) tryProvider(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	in, out := 0, 0
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation succeeded on %s (%s), tokens in=%d out=%d",
		provider.Name(), provider.Model(), in, out)
}
