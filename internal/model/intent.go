package model

// Intent is the classified action a user request maps to.
type Intent string

const (
	IntentSummarize Intent = "summarize"
	IntentFind      Intent = "find"
	IntentDraft     Intent = "draft"
	IntentRemind    Intent = "remind"
	IntentWeather   Intent = "weather"
	IntentUnknown   Intent = "unknown"
)

// ParseIntent maps a raw string to a known Intent, defaulting to unknown.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentSummarize, IntentFind, IntentDraft, IntentRemind, IntentWeather:
		return Intent(s)
	}
	return IntentUnknown
}

// Recognized entity keys. Extractors may only populate these; the engine
// ignores anything else for forward compatibility with extractor changes.
const (
	EntityTopic        = "topic"
	EntityQuery        = "query"
	EntityLocation     = "location"
	EntityDate         = "date"
	EntityDateEnd      = "date_end"
	EntityRecipient    = "recipient"
	EntityPriority     = "priority"
	EntityWeatherQuery = "weather_query"
)

// RecognizedEntityKeys lists every entity key the engine understands,
// in a stable order.
var RecognizedEntityKeys = []string{
	EntityTopic,
	EntityQuery,
	EntityLocation,
	EntityDate,
	EntityDateEnd,
	EntityRecipient,
	EntityPriority,
	EntityWeatherQuery,
}

// Recognized constraint keys.
const (
	ConstraintSourcePreference = "source_preference"
	ConstraintSafety           = "safety"
)

// Source preference values.
const (
	SourceNotes  = "notes"
	SourceFiles  = "files"
	SourceEither = "either"
)

// EntityBag holds the entities extracted from one user turn.
// A key that is absent is distinct from a key present with an empty value.
// Immutable once built; the engine only reads it.
type EntityBag map[string]string

// Get returns the value for key and whether the key is present.
func (b EntityBag) Get(key string) (string, bool) {
	v, ok := b[key]
	return v, ok
}

// Has reports whether key is present in the bag.
func (b EntityBag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// Clone returns a copy of the bag. Callers that overlay overrides must
// clone first so the original turn snapshot stays immutable.
func (b EntityBag) Clone() EntityBag {
	out := make(EntityBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// ConstraintBag holds routing constraints for one user turn.
type ConstraintBag map[string]string

// SourcePreference returns the source_preference constraint,
// defaulting to "either".
func (b ConstraintBag) SourcePreference() string {
	if v, ok := b[ConstraintSourcePreference]; ok {
		return v
	}
	return SourceEither
}

// Safety returns the safety constraint, defaulting to "normal".
func (b ConstraintBag) Safety() string {
	if v, ok := b[ConstraintSafety]; ok {
		return v
	}
	return "normal"
}

// Clone returns a copy of the bag.
func (b ConstraintBag) Clone() ConstraintBag {
	out := make(ConstraintBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// IntentPayload is one extracted turn: intent plus entity and constraint
// snapshots. Built once per user turn by the extractor.
type IntentPayload struct {
	Intent      Intent        `json:"intent"`
	Entities    EntityBag     `json:"entities"`
	Constraints ConstraintBag `json:"constraints"`
}
