package routing

import (
	"context"
	"fmt"

	"personal-agent/internal/model"
	"personal-agent/pkg/log"
)

// Chain evaluates backends in priority order and falls back only on a
// hard failure of the earlier tier, at most once per tier per call. The
// backend that actually answered is surfaced in the Result so failures
// stay diagnosable.
type Chain struct {
	backends []Engine
	l        log.Logger
}

// NewChain creates a fallback chain over the given backends, tried in
// order. The terminal tier should be NewStub so the chain always answers.
func NewChain(l log.Logger, backends ...Engine) *Chain {
	return &Chain{backends: backends, l: l}
}

// Decide evaluates the snapshot, falling back across tiers on hard errors.
func (c *Chain) Decide(ctx context.Context, intent model.Intent, entities model.EntityBag, constraints model.ConstraintBag) (Result, error) {
	if len(c.backends) == 0 {
		return Result{}, fmt.Errorf("routing: no backends configured")
	}

	var lastErr error
	for _, backend := range c.backends {
		decision, err := backend.Decide(intent, entities, constraints)
		if err == nil {
			return Result{Decision: decision, Backend: backend.Name()}, nil
		}
		c.l.Warnf(ctx, "routing: backend %s failed, falling back: %v", backend.Name(), err)
		lastErr = err
	}

	return Result{}, fmt.Errorf("routing: all backends failed: %w", lastErr)
}

// Stub is the deterministic terminal tier: it always answers NoMatch and
// never fails, so a fully degraded engine degrades to "defer to the oracle"
// rather than an error.
type Stub struct{}

var _ Engine = (*Stub)(nil)

// NewStub creates the stub backend.
func NewStub() *Stub { return &Stub{} }

// Decide implements Engine.
func (s *Stub) Decide(model.Intent, model.EntityBag, model.ConstraintBag) (model.RoutingDecision, error) {
	return model.NewNoMatch(), nil
}

// Name implements Engine.
func (s *Stub) Name() string { return model.TierStub }
