package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"personal-agent/internal/model"
	"personal-agent/internal/oracle"
)

// Run executes one agent run and returns its event stream. The channel
// carries a totally ordered, finite sequence closed after exactly one
// terminal event (final_answer or error). The buffer is sized so the run
// always finishes even when the caller stops reading.
func (o *Orchestrator) Run(ctx context.Context, scope model.Scope, text string, maxTurns int) <-chan model.Event {
	if maxTurns <= 0 {
		maxTurns = o.defaultMaxTurns
	}

	events := make(chan model.Event, 3*maxTurns+2)
	go func() {
		defer close(events)
		o.run(ctx, scope, text, maxTurns, events)
	}()
	return events
}

func (o *Orchestrator) run(ctx context.Context, scope model.Scope, text string, maxTurns int, events chan<- model.Event) {
	runID := uuid.NewString()
	limiter := o.limiterFor(scope.Key())
	req := oracle.Request{
		History: o.historyFor(scope.Key()),
		Text:    text,
	}

	emit := func(turn int, ev model.Event) {
		ev.RunID = runID
		ev.Turn = turn
		ev.Timestamp = time.Now()
		events <- ev
	}

	for turn := 1; turn <= maxTurns; turn++ {
		// Cancellation is honored at turn boundaries only: a tool call in
		// flight runs to completion and its result event is preserved.
		if ctx.Err() != nil {
			emit(turn, cancelledEvent(ctx))
			return
		}

		emit(turn, model.Event{Type: model.EventTurnStarted})

		if err := limiter.Wait(ctx); err != nil {
			emit(turn, cancelledEvent(ctx))
			return
		}

		action, err := o.oracle.Decide(ctx, req)
		if err != nil {
			emit(turn, decideErrorEvent(err))
			return
		}

		switch action.Kind {
		case oracle.ActionFinish:
			o.remember(scope.Key(), text, action.Answer)
			emit(turn, model.Event{
				Type:   model.EventFinalAnswer,
				Answer: action.Answer,
				Tier:   action.Tier,
			})
			return

		case oracle.ActionAskUser:
			// Not a failure: the question is the answer for this run, and
			// the caller resumes with a fresh run carrying the reply.
			o.remember(scope.Key(), text, action.Question)
			emit(turn, model.Event{
				Type:       model.EventFinalAnswer,
				Answer:     action.Question,
				IsQuestion: true,
				Tier:       action.Tier,
			})
			return

		case oracle.ActionToolCall:
			emit(turn, model.Event{
				Type: model.EventToolCalling,
				Tool: action.Tool,
				Args: action.Args,
				Tier: action.Tier,
			})

			step := o.executeTool(ctx, turn, action, emit)
			req.Steps = append(req.Steps, step)

		default:
			emit(turn, model.Event{
				Type:    model.EventError,
				Code:    model.ErrCodeOracleDecode,
				Message: fmt.Sprintf("oracle returned unknown action %q", action.Kind),
			})
			return
		}
	}

	o.l.Warnf(ctx, "run %s exceeded turn limit (%d)", runID, maxTurns)
	emit(maxTurns, model.Event{
		Type:    model.EventError,
		Code:    model.ErrCodeTurnLimitExceeded,
		Message: fmt.Sprintf("no final answer after %d turns", maxTurns),
	})
}

// executeTool runs the tool and emits its result event. Failures are
// encoded in the event and the step, never returned: the oracle sees the
// diagnostic on the next turn and can recover or give up on its own.
func (o *Orchestrator) executeTool(ctx context.Context, turn int, action oracle.Action, emit func(int, model.Event)) oracle.Step {
	step := oracle.Step{Tool: action.Tool, Args: action.Args}

	res, err := o.registry.Execute(ctx, action.Tool, action.Args)
	if err != nil {
		o.l.Warnf(ctx, "tool %s failed: %v", action.Tool, err)
		step.Err = err.Error()
		emit(turn, model.Event{
			Type:    model.EventToolResult,
			Tool:    action.Tool,
			Success: false,
			Output:  err.Error(),
		})
		return step
	}

	step.Result = res.Output
	step.Tier = res.Tier
	emit(turn, model.Event{
		Type:    model.EventToolResult,
		Tool:    action.Tool,
		Success: true,
		Output:  renderOutput(res.Output),
		Tier:    res.Tier,
	})
	return step
}

func (o *Orchestrator) limiterFor(key string) *rate.Limiter {
	limiter, ok := o.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(o.rate, o.burst)
		o.limiters.Add(key, limiter)
	}
	return limiter
}

func (o *Orchestrator) historyFor(key string) []oracle.Exchange {
	s, ok := o.sessions.Get(key)
	if !ok {
		return nil
	}
	return s.history()
}

func (o *Orchestrator) remember(key, user, answer string) {
	s, ok := o.sessions.Get(key)
	if !ok {
		s = &session{}
		o.sessions.Add(key, s)
	}
	s.remember(oracle.Exchange{User: user, Answer: answer})
}

func cancelledEvent(ctx context.Context) model.Event {
	msg := "run cancelled"
	if err := ctx.Err(); err != nil {
		msg = err.Error()
	}
	return model.Event{Type: model.EventError, Code: model.ErrCodeCancelled, Message: msg}
}

func decideErrorEvent(err error) model.Event {
	code := model.ErrCodeExtractionFailed
	if errors.Is(err, oracle.ErrDecode) {
		code = model.ErrCodeOracleDecode
	}
	return model.Event{Type: model.EventError, Code: code, Message: err.Error()}
}

func renderOutput(output interface{}) string {
	if s, ok := output.(string); ok {
		return s
	}
	b, err := json.Marshal(output)
	if err != nil {
		return fmt.Sprintf("%v", output)
	}
	return string(b)
}
