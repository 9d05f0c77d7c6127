package assistant

import (
	"personal-agent/internal/extractor"
	"personal-agent/internal/model"
)

// Chat modes, recorded in ChatOutput.Mode.
const (
	ModeRouted = "routed"
	ModeAgent  = "agent"
)

type RouteInput struct {
	Text      string
	Overrides extractor.Overrides
}

type RouteOutput struct {
	Intent      model.Intent
	Entities    model.EntityBag
	Constraints model.ConstraintBag
	Decision    model.RoutingDecision
	// Backend names the engine tier that produced the decision.
	Backend string
}

type ChatInput struct {
	Text      string
	Overrides extractor.Overrides
	MaxTurns  int
}

type ChatOutput struct {
	Answer     string
	IsQuestion bool
	Mode       string
	// Tool and Tier are set on routed dispatches.
	Tool string
	Tier string
	// Events carries the full run record on the agent path.
	Events []model.Event
}

type RunInput struct {
	Text     string
	MaxTurns int
}
