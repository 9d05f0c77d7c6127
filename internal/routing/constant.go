package routing

// Canonical clarifying questions. The Mangle ruleset carries the same
// strings; the conformance suite pins them to each other.
const (
	QuestionWeatherLocation = "What location should I use?"
	QuestionWeatherDate     = "What date should I check the weather for? (e.g., today, tomorrow, 2026-02-10)"
	QuestionRemindDate      = "When is this due? (e.g., tomorrow, next Friday, 2026-02-01)"
	QuestionDraftRecipient  = "Who should I email?"
	QuestionSummarizeTopic  = "What should I summarize?"
	QuestionFindTopic       = "What should I find?"
)
