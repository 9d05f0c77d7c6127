package orchestrator

import "time"

const (
	DefaultMaxTurns        = 5
	DefaultSessionTTL      = 10 * time.Minute
	DefaultMaxSessions     = 1000
	DefaultOraclePerMinute = 30

	// MaxSessionHistory caps remembered exchanges per session.
	MaxSessionHistory = 5
)
