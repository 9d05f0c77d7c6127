package oracle

import (
	"context"
	"fmt"
	"time"

	"personal-agent/internal/extractor"
	"personal-agent/internal/model"
	"personal-agent/internal/routing"
	"personal-agent/pkg/log"
)

// Stub is the deterministic terminal oracle: it routes the user's text
// through the decision engine and needs no model. One tool call, then a
// templated answer.
type Stub struct {
	extract extractor.Extractor
	chain   *routing.Chain
	l       log.Logger
}

var _ Oracle = (*Stub)(nil)

// NewStub creates the routing-backed oracle.
func NewStub(extract extractor.Extractor, chain *routing.Chain, l log.Logger) *Stub {
	return &Stub{extract: extract, chain: chain, l: l}
}

// Name implements Oracle.
func (o *Stub) Name() string { return model.TierStub }

// Decide routes on the first turn and answers from the tool result after.
func (o *Stub) Decide(ctx context.Context, req Request) (Action, error) {
	if len(req.Steps) > 0 {
		return o.finish(req.Steps[len(req.Steps)-1]), nil
	}

	payload, err := o.extract.Extract(ctx, req.Text, time.Now(), extractor.Overrides{})
	if err != nil {
		return Action{}, fmt.Errorf("stub oracle extraction failed: %w", err)
	}

	result, err := o.chain.Decide(ctx, payload.Intent, payload.Entities, payload.Constraints)
	if err != nil {
		return Action{}, fmt.Errorf("stub oracle routing failed: %w", err)
	}

	decision := result.Decision
	switch decision.Kind {
	case model.DecisionRoute:
		return Action{Kind: ActionToolCall, Tool: decision.Tool, Args: decision.Args.Map(), Tier: model.TierStub}, nil

	case model.DecisionNeedInfo:
		return Action{Kind: ActionAskUser, Question: decision.Question, Tier: model.TierStub}, nil

	default:
		return Action{Kind: ActionFinish, Answer: noMatchAnswer, Tier: model.TierStub}, nil
	}
}

// finish renders a templated answer from the last tool result.
func (o *Stub) finish(step Step) Action {
	if step.Err != "" {
		return Action{
			Kind:   ActionFinish,
			Answer: fmt.Sprintf("The %s step failed: %s", step.Tool, step.Err),
			Tier:   model.TierStub,
		}
	}
	return Action{Kind: ActionFinish, Answer: renderResult(step), Tier: model.TierStub}
}

func renderResult(step Step) string {
	result, ok := step.Result.(map[string]interface{})
	if !ok {
		return fmt.Sprintf("%s finished: %v", step.Tool, step.Result)
	}

	for _, key := range []string{"summary", "draft", "note"} {
		if text, ok := result[key].(string); ok && text != "" {
			return text
		}
	}

	if count, ok := result["count"]; ok {
		return fmt.Sprintf("%s found %v result(s).", step.Tool, count)
	}
	if title, ok := result["title"].(string); ok {
		if due, ok := result["due"].(string); ok {
			return fmt.Sprintf("Created reminder %q due %s.", title, due)
		}
	}
	return fmt.Sprintf("%s finished.", step.Tool)
}
