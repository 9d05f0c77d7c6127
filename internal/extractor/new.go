// Package extractor turns raw user text into a structured intent snapshot.
// Extraction is an external concern to the decision engine: the engine only
// ever sees the resulting intent/entity/constraint records.
package extractor

import (
	"context"
	"time"

	"personal-agent/internal/model"
	"personal-agent/pkg/llmprovider"
	"personal-agent/pkg/log"
)

// Extractor builds one intent snapshot per user turn.
type Extractor interface {
	// Extract never aborts the turn: on failure it returns the Unknown
	// intent with empty bags and the causing error for diagnostics.
	Extract(ctx context.Context, text string, today time.Time, ov Overrides) (model.IntentPayload, error)
}

// Heuristic is the deterministic keyword extractor. It cannot fail, which
// makes it the terminal tier under the LLM extractor.
type Heuristic struct{}

var _ Extractor = (*Heuristic)(nil)

// NewHeuristic creates the keyword extractor.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// LLM extracts with a structured-output model call and falls back to the
// heuristic extractor on any decode or transport failure.
type LLM struct {
	llm       *llmprovider.Manager
	heuristic *Heuristic
	l         log.Logger
}

var _ Extractor = (*LLM)(nil)

// NewLLM creates the model-backed extractor.
func NewLLM(llm *llmprovider.Manager, l log.Logger) *LLM {
	return &LLM{llm: llm, heuristic: NewHeuristic(), l: l}
}
