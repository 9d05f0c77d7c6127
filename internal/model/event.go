package model

import "time"

// EventType identifies one step record in a run's event stream.
type EventType string

const (
	EventTurnStarted EventType = "turn_started"
	EventToolCalling EventType = "tool_calling"
	EventToolResult  EventType = "tool_result"
	EventFinalAnswer EventType = "final_answer"
	EventError       EventType = "error"
)

// ErrorCode classifies terminal error events.
type ErrorCode string

const (
	ErrCodeExtractionFailed  ErrorCode = "extraction_failed"
	ErrCodeOracleDecode      ErrorCode = "oracle_decode_error"
	ErrCodeToolExecution     ErrorCode = "tool_execution_failed"
	ErrCodeTurnLimitExceeded ErrorCode = "turn_limit_exceeded"
	ErrCodeCancelled         ErrorCode = "cancelled"
)

// Fallback-chain tier labels surfaced in event and result metadata.
const (
	TierPrimary   = "primary"
	TierSecondary = "secondary"
	TierStub      = "stub"
)

// Event is one record in the ordered per-run stream. Events are totally
// ordered within a run: turn_started precedes tool_calling, which precedes
// its matching tool_result, which precedes the next turn_started or the
// terminal event. Exactly one terminal event (final_answer or error) closes
// a run.
type Event struct {
	RunID     string    `json:"run_id"`
	Turn      int       `json:"turn"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	// tool_calling / tool_result fields.
	Tool    string                 `json:"tool,omitempty"`
	Args    map[string]interface{} `json:"args,omitempty"`
	Success bool                   `json:"success"`
	Output  string                 `json:"output,omitempty"`
	// Tier records which fallback tier produced a tool result or answer
	// ("primary", "secondary", "stub", or a provider name).
	Tier string `json:"tier,omitempty"`

	// final_answer fields. IsQuestion marks an ask-user turn: the caller
	// resumes a fresh run with the user's reply appended to context.
	Answer     string `json:"answer,omitempty"`
	IsQuestion bool   `json:"is_question,omitempty"`

	// error fields.
	Code    ErrorCode `json:"code,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Terminal reports whether this event closes its run.
func (e Event) Terminal() bool {
	return e.Type == EventFinalAnswer || e.Type == EventError
}

// Scope identifies the caller of a conversation (one session per scope key).
type Scope struct {
	UserID    string
	SessionID string
}

// Key returns the session cache key for this scope.
func (s Scope) Key() string {
	if s.SessionID != "" {
		return s.SessionID
	}
	return s.UserID
}
