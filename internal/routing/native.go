package routing

import (
	"fmt"

	"personal-agent/internal/model"
)

// Decide implements Engine with direct catalogue evaluation in priority
// order: route rules first (first rule whose required inputs are all
// present wins), then missing-info predicates, then NoMatch.
func (n *Native) Decide(intent model.Intent, entities model.EntityBag, constraints model.ConstraintBag) (model.RoutingDecision, error) {
	for _, rule := range routeRules {
		if !intentMatches(rule.Intents, intent) {
			continue
		}
		if !constraintMatches(rule.Constraint, constraints) {
			continue
		}
		args, ok := buildArgs(rule.Args, entities)
		if !ok {
			// A required argument is absent: skip the rule, not the decision.
			continue
		}
		if !n.caps.Has(rule.Tool) {
			return model.RoutingDecision{}, fmt.Errorf("routing: rule %s targets undeclared tool %q", rule.ID, rule.Tool)
		}
		return model.NewRoute(rule.Tool, args), nil
	}

	for _, rule := range needInfoRules {
		if rule.Intent != intent {
			continue
		}
		if allAbsent(rule.MissingAll, entities) {
			return model.NewNeedInfo(rule.Missing, rule.Question), nil
		}
	}

	return model.NewNoMatch(), nil
}

func intentMatches(intents []model.Intent, intent model.Intent) bool {
	for _, i := range intents {
		if i == intent {
			return true
		}
	}
	return false
}

func constraintMatches(m *ConstraintMatch, constraints model.ConstraintBag) bool {
	if m == nil {
		return true
	}
	value := constraints[m.Key]
	if m.Key == model.ConstraintSourcePreference {
		value = constraints.SourcePreference()
	}
	for _, allowed := range m.OneOf {
		if value == allowed {
			return true
		}
	}
	return false
}

// buildArgs computes the ordered argument list for a rule. It reports
// ok=false when a required entity is absent, which skips the rule.
func buildArgs(specs []ArgSpec, entities model.EntityBag) (model.Args, bool) {
	args := make(model.Args, 0, len(specs))
	for _, spec := range specs {
		if spec.From == "" {
			args = append(args, model.Arg{Name: spec.Name, Value: spec.Default})
			continue
		}
		value, ok := resolveEntity(spec.From, entities)
		if !ok {
			if !spec.HasDefault {
				return nil, false
			}
			value = spec.Default
		}
		args = append(args, model.Arg{Name: spec.Name, Value: value})
	}
	return args, true
}

// resolveEntity looks up a plain entity key, or for KeyTopicOrQuery
// resolves topic first, then query.
func resolveEntity(key string, entities model.EntityBag) (string, bool) {
	if key == KeyTopicOrQuery {
		if v, ok := entities.Get(model.EntityTopic); ok {
			return v, true
		}
		return entities.Get(model.EntityQuery)
	}
	return entities.Get(key)
}

func allAbsent(keys []string, entities model.EntityBag) bool {
	for _, key := range keys {
		if entities.Has(key) {
			return false
		}
	}
	return true
}
