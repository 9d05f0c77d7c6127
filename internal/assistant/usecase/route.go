package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-agent/internal/assistant"
	"personal-agent/internal/model"
)

// Route runs extraction and the decision engine without side effects.
func (uc *implUseCase) Route(ctx context.Context, sc model.Scope, input assistant.RouteInput) (assistant.RouteOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.RouteOutput{}, assistant.ErrEmptyInput
	}

	payload, err := uc.extract.Extract(ctx, text, uc.now(), input.Overrides)
	if err != nil {
		return assistant.RouteOutput{}, fmt.Errorf("extraction failed: %w", err)
	}

	result, err := uc.engine.Decide(ctx, payload.Intent, payload.Entities, payload.Constraints)
	if err != nil {
		return assistant.RouteOutput{}, fmt.Errorf("routing failed: %w", err)
	}

	uc.l.Infof(ctx, "route: user=%s intent=%s decision=%s backend=%s",
		sc.UserID, payload.Intent, result.Decision.Canonical(), result.Backend)

	return assistant.RouteOutput{
		Intent:      payload.Intent,
		Entities:    payload.Entities,
		Constraints: payload.Constraints,
		Decision:    result.Decision,
		Backend:     result.Backend,
	}, nil
}
