// Package orchestrator runs the turn-bounded agent loop: consult the
// oracle, execute the chosen tool, feed the result back, until a final
// answer, a question for the user, or the turn limit.
package orchestrator

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"personal-agent/internal/agent"
	"personal-agent/internal/oracle"
	pkgLog "personal-agent/pkg/log"
)

type Orchestrator struct {
	oracle   oracle.Oracle
	registry *agent.ToolRegistry
	l        pkgLog.Logger

	sessions *expirable.LRU[string, *session]
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int

	defaultMaxTurns int
}

// Config tunes session retention and per-session oracle throughput.
// Zero values fall back to the defaults in constant.go.
type Config struct {
	MaxTurns        int
	SessionTTL      time.Duration
	MaxSessions     int
	OraclePerMinute int
}

func New(o oracle.Oracle, registry *agent.ToolRegistry, l pkgLog.Logger, cfg Config) *Orchestrator {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.OraclePerMinute <= 0 {
		cfg.OraclePerMinute = DefaultOraclePerMinute
	}

	return &Orchestrator{
		oracle:          o,
		registry:        registry,
		l:               l,
		sessions:        expirable.NewLRU[string, *session](cfg.MaxSessions, nil, cfg.SessionTTL),
		limiters:        expirable.NewLRU[string, *rate.Limiter](cfg.MaxSessions, nil, cfg.SessionTTL),
		rate:            rate.Limit(float64(cfg.OraclePerMinute) / 60.0),
		burst:           burstFor(cfg.OraclePerMinute),
		defaultMaxTurns: cfg.MaxTurns,
	}
}

func burstFor(perMinute int) int {
	burst := perMinute / 10
	if burst < 1 {
		burst = 1
	}
	return burst
}
