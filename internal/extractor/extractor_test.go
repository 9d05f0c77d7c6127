package extractor

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-agent/internal/model"
	"personal-agent/pkg/llmprovider"
	"personal-agent/pkg/log"
)

var testToday = time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

func TestHeuristic_Extract(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantIntent      model.Intent
		wantEntities    map[string]string
		wantConstraints map[string]string
	}{
		{
			name:            "summarize notes with topic",
			text:            "summarize my notes about the offsite",
			wantIntent:      model.IntentSummarize,
			wantEntities:    map[string]string{model.EntityTopic: "offsite"},
			wantConstraints: map[string]string{model.ConstraintSourcePreference: model.SourceNotes},
		},
		{
			name:            "find in files",
			text:            "find the budget spreadsheet in my files",
			wantIntent:      model.IntentFind,
			wantEntities:    map[string]string{model.EntityQuery: "budget spreadsheet"},
			wantConstraints: map[string]string{model.ConstraintSourcePreference: model.SourceFiles},
		},
		{
			name:         "weather with location and date",
			text:         "what's the weather in Paris tomorrow",
			wantIntent:   model.IntentWeather,
			wantEntities: map[string]string{model.EntityLocation: "paris", model.EntityDate: "tomorrow"},
		},
		{
			name:         "weather without date",
			text:         "weather in Hanoi",
			wantIntent:   model.IntentWeather,
			wantEntities: map[string]string{model.EntityLocation: "hanoi"},
		},
		{
			name:         "draft email with recipient and topic",
			text:         "email Sam about the deadline",
			wantIntent:   model.IntentDraft,
			wantEntities: map[string]string{model.EntityRecipient: "sam", model.EntityTopic: "deadline"},
		},
		{
			name:         "reminder with due date",
			text:         "remind me to file taxes by next friday",
			wantIntent:   model.IntentRemind,
			wantEntities: map[string]string{model.EntityTopic: "file taxes", model.EntityDate: "next friday"},
		},
		{
			name:       "unrecognized input",
			text:       "play some jazz",
			wantIntent: model.IntentUnknown,
		},
		{
			name:       "empty input",
			text:       "   ",
			wantIntent: model.IntentUnknown,
		},
	}

	h := NewHeuristic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Extract(context.Background(), tt.text, testToday, Overrides{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Intent != tt.wantIntent {
				t.Fatalf("intent = %s, want %s", got.Intent, tt.wantIntent)
			}
			for key, want := range tt.wantEntities {
				if got.Entities[key] != want {
					t.Errorf("entity %s = %q, want %q", key, got.Entities[key], want)
				}
			}
			for key, want := range tt.wantConstraints {
				if got.Constraints[key] != want {
					t.Errorf("constraint %s = %q, want %q", key, got.Constraints[key], want)
				}
			}
		})
	}
}

func TestHeuristic_Overrides(t *testing.T) {
	h := NewHeuristic()

	got, err := h.Extract(context.Background(), "what's the weather", testToday, Overrides{
		Location: "Paris",
		Date:     "2026-02-10",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Entities[model.EntityLocation] != "Paris" {
		t.Errorf("override location not applied: %q", got.Entities[model.EntityLocation])
	}
	if got.Entities[model.EntityDate] != "2026-02-10" {
		t.Errorf("override date not applied: %q", got.Entities[model.EntityDate])
	}
}

// fakeProvider returns a fixed response or error.
type fakeProvider struct {
	text string
	err  error
}

func (p *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: p.text}},
		},
		Usage: &llmprovider.Usage{},
	}, nil
}

func (p *fakeProvider) Name() string  { return "fake" }
func (p *fakeProvider) Model() string { return "fake-model" }

func newTestManager(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{
		RetryAttempts: 1,
	}, log.Noop())
}

func TestLLM_Extract(t *testing.T) {
	provider := &fakeProvider{
		text: "```json\n{\"intent\": \"weather\", \"entities\": {\"location\": \"Paris\", \"made_up\": \"x\"}, \"constraints\": {\"source_preference\": \"bogus\"}}\n```",
	}
	e := NewLLM(newTestManager(provider), log.Noop())

	got, err := e.Extract(context.Background(), "weather in Paris?", testToday, Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != model.IntentWeather {
		t.Fatalf("intent = %s, want weather", got.Intent)
	}
	if got.Entities[model.EntityLocation] != "Paris" {
		t.Errorf("location = %q, want Paris", got.Entities[model.EntityLocation])
	}
	if _, ok := got.Entities["made_up"]; ok {
		t.Errorf("unrecognized entity key should be dropped")
	}
	if _, ok := got.Constraints[model.ConstraintSourcePreference]; ok {
		t.Errorf("invalid source_preference should be dropped")
	}
}

func TestLLM_Extract_FallsBackToHeuristics(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
	}{
		{name: "provider error", provider: &fakeProvider{err: errors.New("upstream down")}},
		{name: "malformed json", provider: &fakeProvider{text: "not json at all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewLLM(newTestManager(tt.provider), log.Noop())

			got, err := e.Extract(context.Background(), "summarize my notes about the offsite", testToday, Overrides{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Intent != model.IntentSummarize {
				t.Fatalf("heuristic fallback intent = %s, want summarize", got.Intent)
			}
			if got.Constraints[model.ConstraintSourcePreference] != model.SourceNotes {
				t.Errorf("heuristic fallback should keep notes preference")
			}
		})
	}
}
