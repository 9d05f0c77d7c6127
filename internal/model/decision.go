package model

import (
	"fmt"
	"strings"
)

// DecisionKind discriminates the three routing outcomes.
type DecisionKind string

const (
	DecisionRoute    DecisionKind = "route"
	DecisionNeedInfo DecisionKind = "need_info"
	DecisionNoMatch  DecisionKind = "no_match"
)

// Arg is one named tool argument. Args keep per-rule declaration order,
// which a plain map would lose.
type Arg struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Args is an ordered argument list.
type Args []Arg

// Get returns the value for name and whether it is present.
func (a Args) Get(name string) (string, bool) {
	for _, arg := range a {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return "", false
}

// Map flattens the ordered args into a map for tool invocation.
func (a Args) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(a))
	for _, arg := range a {
		out[arg.Name] = arg.Value
	}
	return out
}

// RoutingDecision is the engine's verdict for one intent snapshot:
// a tool call, a clarifying question, or nothing. It is a pure function
// of its inputs, so any two engine backends must agree on it exactly.
type RoutingDecision struct {
	Kind DecisionKind `json:"kind"`

	// Route fields.
	Tool string `json:"tool,omitempty"`
	Args Args   `json:"args,omitempty"`

	// NeedInfo fields. Missing names the single entity the question asks for.
	Missing  string `json:"missing,omitempty"`
	Question string `json:"question,omitempty"`
}

// NewRoute builds a Route decision.
func NewRoute(tool string, args Args) RoutingDecision {
	return RoutingDecision{Kind: DecisionRoute, Tool: tool, Args: args}
}

// NewNeedInfo builds a NeedInfo decision naming one missing entity.
func NewNeedInfo(missing, question string) RoutingDecision {
	return RoutingDecision{Kind: DecisionNeedInfo, Missing: missing, Question: question}
}

// NewNoMatch builds a NoMatch decision. NoMatch is not an error: nothing
// to do and nothing missing. Callers treat it as a no-op.
func NewNoMatch() RoutingDecision {
	return RoutingDecision{Kind: DecisionNoMatch}
}

// Canonical renders the decision in a stable textual form. The backend
// conformance suite compares these strings, so two backends agree only
// when their decisions are byte-identical.
func (d RoutingDecision) Canonical() string {
	switch d.Kind {
	case DecisionRoute:
		var b strings.Builder
		fmt.Fprintf(&b, "route(%s", d.Tool)
		for _, arg := range d.Args {
			fmt.Fprintf(&b, ", %s=%q", arg.Name, arg.Value)
		}
		b.WriteString(")")
		return b.String()
	case DecisionNeedInfo:
		return fmt.Sprintf("need_info(%s, %q)", d.Missing, d.Question)
	default:
		return "no_match"
	}
}

// Equal reports whether two decisions are identical, including arg order.
func (d RoutingDecision) Equal(o RoutingDecision) bool {
	return d.Canonical() == o.Canonical()
}
