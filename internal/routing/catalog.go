package routing

import "personal-agent/internal/model"

// The canonical rule catalogue. Order is semantics: a looser fallback rule
// for the same intent sits after the stricter one (prefer notes, then fall
// back to files with an added scope argument). Immutable after init.
var routeRules = []Rule{
	{
		ID:      "prefer-notes",
		Intents: []model.Intent{model.IntentSummarize, model.IntentFind},
		Constraint: &ConstraintMatch{
			Key:   model.ConstraintSourcePreference,
			OneOf: []string{model.SourceNotes, model.SourceEither},
		},
		Tool: model.ToolSearchNotes,
		Args: []ArgSpec{
			{Name: "query", From: KeyTopicOrQuery},
		},
	},
	{
		ID:      "fallback-files",
		Intents: []model.Intent{model.IntentSummarize, model.IntentFind},
		Tool:    model.ToolSearchFiles,
		Args: []ArgSpec{
			{Name: "query", From: KeyTopicOrQuery},
			{Name: "scope", HasDefault: true, Default: "user"},
		},
	},
	{
		ID:      "weather",
		Intents: []model.Intent{model.IntentWeather},
		Tool:    model.ToolGetWeather,
		Args: []ArgSpec{
			{Name: "location", From: model.EntityLocation},
			{Name: "date", From: model.EntityDate},
		},
	},
	{
		ID:      "draft-email",
		Intents: []model.Intent{model.IntentDraft},
		Tool:    model.ToolDraftEmail,
		Args: []ArgSpec{
			{Name: "to", From: model.EntityRecipient},
			{Name: "subject", From: model.EntityTopic, HasDefault: true, Default: "(no subject)"},
			{Name: "body", HasDefault: true, Default: ""},
		},
	},
	{
		ID:      "remind",
		Intents: []model.Intent{model.IntentRemind},
		Tool:    model.ToolCreateTodo,
		Args: []ArgSpec{
			{Name: "title", From: model.EntityTopic},
			{Name: "due", From: model.EntityDate},
			{Name: "priority", From: model.EntityPriority, HasDefault: true, Default: "normal"},
		},
	},
}

// Missing-information predicates, evaluated in order only when no routing
// rule fired. One question per missing-key check.
var needInfoRules = []NeedInfoRule{
	{
		Intent:     model.IntentWeather,
		MissingAll: []string{model.EntityLocation},
		Missing:    model.EntityLocation,
		Question:   QuestionWeatherLocation,
	},
	{
		Intent:     model.IntentWeather,
		MissingAll: []string{model.EntityDate},
		Missing:    model.EntityDate,
		Question:   QuestionWeatherDate,
	},
	{
		Intent:     model.IntentRemind,
		MissingAll: []string{model.EntityDate},
		Missing:    model.EntityDate,
		Question:   QuestionRemindDate,
	},
	{
		Intent:     model.IntentDraft,
		MissingAll: []string{model.EntityRecipient},
		Missing:    model.EntityRecipient,
		Question:   QuestionDraftRecipient,
	},
	{
		Intent:     model.IntentSummarize,
		MissingAll: []string{model.EntityTopic, model.EntityQuery},
		Missing:    model.EntityQuery,
		Question:   QuestionSummarizeTopic,
	},
	{
		Intent:     model.IntentFind,
		MissingAll: []string{model.EntityTopic, model.EntityQuery},
		Missing:    model.EntityQuery,
		Question:   QuestionFindTopic,
	},
}

// RouteRules exposes the catalogue for diagnostics and tests.
func RouteRules() []Rule {
	out := make([]Rule, len(routeRules))
	copy(out, routeRules)
	return out
}
