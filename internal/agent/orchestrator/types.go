package orchestrator

import (
	"sync"

	"personal-agent/internal/oracle"
)

// session holds the recent exchanges for one scope key. Sessions are
// independent: evicting or corrupting one never affects another.
type session struct {
	mu        sync.Mutex
	exchanges []oracle.Exchange
}

func (s *session) history() []oracle.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]oracle.Exchange, len(s.exchanges))
	copy(out, s.exchanges)
	return out
}

func (s *session) remember(ex oracle.Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanges = append(s.exchanges, ex)
	if len(s.exchanges) > MaxSessionHistory {
		s.exchanges = s.exchanges[len(s.exchanges)-MaxSessionHistory:]
	}
}
