package assistant

import (
	"context"

	"personal-agent/internal/model"
)

// UseCase is the business surface of the assistant: inspect routing
// decisions, answer one message end to end, or stream a raw agent run.
type UseCase interface {
	// Route extracts an intent snapshot from text and returns the engine's
	// decision without executing anything.
	Route(ctx context.Context, sc model.Scope, input RouteInput) (RouteOutput, error)

	// Chat answers one message: routed tool dispatch when a rule matches,
	// a clarifying question when information is missing, and the full
	// agent loop otherwise.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// Run starts an agent loop for the text and returns its event stream.
	Run(ctx context.Context, sc model.Scope, input RunInput) <-chan model.Event
}
