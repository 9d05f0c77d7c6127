// Package oracle decides, once per turn, what the agent loop does next:
// call a tool, ask the user a question, or finish with an answer.
package oracle

import "context"

// ActionKind discriminates oracle decisions.
type ActionKind string

const (
	ActionToolCall ActionKind = "tool_call"
	ActionAskUser  ActionKind = "ask_user"
	ActionFinish   ActionKind = "finish"
)

// Action is one oracle decision. Tier records who produced it: a provider
// name for the model path, or "stub" for the deterministic fallback.
type Action struct {
	Kind     ActionKind
	Tool     string
	Args     map[string]interface{}
	Question string
	Answer   string
	Tier     string
}

// Step is a completed tool call visible to the oracle on later turns.
type Step struct {
	Tool   string
	Args   map[string]interface{}
	Result interface{}
	Tier   string
	Err    string
}

// Exchange is one completed round from the session history.
type Exchange struct {
	User   string
	Answer string
}

// Request is the oracle's view of a run: recent session history, the
// user's text, plus every tool call already made this run.
type Request struct {
	History []Exchange
	Text    string
	Steps   []Step
}

// Oracle picks the next action for a run.
type Oracle interface {
	Decide(ctx context.Context, req Request) (Action, error)
	Name() string
}
