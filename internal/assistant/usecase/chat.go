package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-agent/internal/assistant"
	"personal-agent/internal/model"
)

// Chat answers one message. A routing rule match dispatches the tool
// directly without burning agent turns; NeedInfo returns the clarifying
// question; everything else goes through the agent loop.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	routed, err := uc.Route(ctx, sc, assistant.RouteInput{Text: input.Text, Overrides: input.Overrides})
	if err != nil {
		return assistant.ChatOutput{}, err
	}

	switch routed.Decision.Kind {
	case model.DecisionRoute:
		return uc.dispatch(ctx, routed.Decision)

	case model.DecisionNeedInfo:
		return assistant.ChatOutput{
			Answer:     routed.Decision.Question,
			IsQuestion: true,
			Mode:       assistant.ModeRouted,
		}, nil

	default:
		return uc.runAgent(ctx, sc, input)
	}
}

// Run implements the raw event-stream surface.
func (uc *implUseCase) Run(ctx context.Context, sc model.Scope, input assistant.RunInput) <-chan model.Event {
	return uc.orch.Run(ctx, sc, strings.TrimSpace(input.Text), input.MaxTurns)
}

func (uc *implUseCase) dispatch(ctx context.Context, decision model.RoutingDecision) (assistant.ChatOutput, error) {
	res, err := uc.registry.Execute(ctx, decision.Tool, decision.Args.Map())
	if err != nil {
		uc.l.Errorf(ctx, "chat: tool %s failed: %v", decision.Tool, err)
		return assistant.ChatOutput{}, fmt.Errorf("%w: %s: %v", assistant.ErrToolExecution, decision.Tool, err)
	}

	return assistant.ChatOutput{
		Answer: renderAnswer(decision.Tool, res.Output),
		Mode:   assistant.ModeRouted,
		Tool:   decision.Tool,
		Tier:   res.Tier,
	}, nil
}

func (uc *implUseCase) runAgent(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	out := assistant.ChatOutput{Mode: assistant.ModeAgent}

	for ev := range uc.orch.Run(ctx, sc, strings.TrimSpace(input.Text), input.MaxTurns) {
		out.Events = append(out.Events, ev)

		switch ev.Type {
		case model.EventFinalAnswer:
			out.Answer = ev.Answer
			out.IsQuestion = ev.IsQuestion
			out.Tier = ev.Tier
		case model.EventError:
			// Partial progress stays in Events for the caller.
			return out, fmt.Errorf("%w: %s: %s", assistant.ErrRunFailed, ev.Code, ev.Message)
		}
	}

	return out, nil
}
