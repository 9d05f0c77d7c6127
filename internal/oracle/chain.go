package oracle

import (
	"context"
	"errors"
	"fmt"

	"personal-agent/pkg/log"
)

// Chain tries oracles in order and falls back on transport-level failures.
// ErrDecode is propagated rather than retried: the model answered, it just
// answered garbage, and re-asking a different tier would hide that.
type Chain struct {
	oracles []Oracle
	l       log.Logger
}

var _ Oracle = (*Chain)(nil)

// NewChain creates a fallback chain over the given oracles, tried in order.
// The last tier should be NewStub so the chain always decides.
func NewChain(l log.Logger, oracles ...Oracle) *Chain {
	return &Chain{oracles: oracles, l: l}
}

// Name implements Oracle.
func (c *Chain) Name() string { return "chain" }

// Decide implements Oracle.
func (c *Chain) Decide(ctx context.Context, req Request) (Action, error) {
	if len(c.oracles) == 0 {
		return Action{}, fmt.Errorf("oracle: no tiers configured")
	}

	var lastErr error
	for _, o := range c.oracles {
		action, err := o.Decide(ctx, req)
		if err == nil {
			return action, nil
		}
		if errors.Is(err, ErrDecode) {
			return Action{}, err
		}
		c.l.Warnf(ctx, "oracle: tier %s failed, falling back: %v", o.Name(), err)
		lastErr = err
	}

	return Action{}, fmt.Errorf("oracle: all tiers failed: %w", lastErr)
}
