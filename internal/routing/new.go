// Package routing implements the decision engine: a pure function from an
// intent snapshot to a tool route, a missing-information question, or no
// match. The rule catalogue is declared once in this package and every
// backend evaluates the same canonical semantics; a conformance suite holds
// backends to byte-identical output.
package routing

import (
	"personal-agent/internal/capability"
	"personal-agent/internal/model"
)

// Engine evaluates one intent snapshot. Implementations must be
// deterministic and side-effect free: identical inputs always produce an
// identical RoutingDecision, so Decide is safe to call from any goroutine.
// An error signals a hard backend failure (never "no rule matched").
type Engine interface {
	// Decide returns the routing verdict for the snapshot.
	Decide(intent model.Intent, entities model.EntityBag, constraints model.ConstraintBag) (model.RoutingDecision, error)

	// Name identifies the backend in result metadata and logs.
	Name() string
}

// Native is the pattern-matching backend: direct Go evaluation of the
// catalogue, first match wins.
type Native struct {
	caps *capability.Registry
}

var _ Engine = (*Native)(nil)

// NewNative creates the native backend bound to a capability registry.
func NewNative(caps *capability.Registry) *Native {
	return &Native{caps: caps}
}

// Name implements Engine.
func (n *Native) Name() string { return "native" }
