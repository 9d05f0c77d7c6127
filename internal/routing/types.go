package routing

import "personal-agent/internal/model"

// KeyTopicOrQuery is the meta entity key that resolves topic first, then
// query; the first present key wins.
const KeyTopicOrQuery = "topic_or_query"

// ConstraintMatch gates a rule on a constraint value.
type ConstraintMatch struct {
	Key   string
	OneOf []string
}

// ArgSpec declares how one tool argument is computed: copy an entity
// verbatim, or copy it with a default when absent, or emit a literal
// (From empty). A required argument (no default) whose entity is absent
// causes the rule, not the whole decision, to be skipped.
type ArgSpec struct {
	Name       string
	From       string // entity key, KeyTopicOrQuery, or "" for a literal
	Default    string
	HasDefault bool
}

// Rule is one routing rule. Rules for an intent are tried in catalogue
// order and the first rule whose required inputs are all present wins.
type Rule struct {
	ID         string
	Intents    []model.Intent
	Constraint *ConstraintMatch
	Tool       string
	Args       []ArgSpec
}

// NeedInfoRule is one missing-information predicate, evaluated only when
// no routing rule fired. It holds when every key in MissingAll is absent.
type NeedInfoRule struct {
	Intent     model.Intent
	MissingAll []string
	Missing    string // the single entity the question names
	Question   string
}

// Result pairs a decision with the backend that produced it. The backend
// name is diagnostic metadata and never part of decision equality.
type Result struct {
	Decision model.RoutingDecision
	Backend  string
}
