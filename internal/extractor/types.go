package extractor

import "personal-agent/internal/model"

// Overrides are caller-supplied entity values that win over anything the
// extractor found in the text. Empty fields are ignored.
type Overrides struct {
	Topic     string
	Query     string
	Date      string
	Location  string
	Recipient string
	Source    string
}

func (o Overrides) apply(p *model.IntentPayload) {
	set := func(key, value string) {
		if value != "" {
			p.Entities[key] = value
		}
	}
	set(model.EntityTopic, o.Topic)
	set(model.EntityQuery, o.Query)
	set(model.EntityDate, o.Date)
	set(model.EntityLocation, o.Location)
	set(model.EntityRecipient, o.Recipient)
	if o.Source != "" {
		p.Constraints[model.ConstraintSourcePreference] = o.Source
	}
}

type llmExtraction struct {
	Intent      string            `json:"intent"`
	Entities    map[string]string `json:"entities"`
	Constraints map[string]string `json:"constraints"`
}
