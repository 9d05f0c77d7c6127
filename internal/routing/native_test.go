package routing

import (
	"context"
	"errors"
	"testing"

	"personal-agent/internal/capability"
	"personal-agent/internal/model"
	"personal-agent/pkg/log"
)

func TestNative_RoutePrecedence(t *testing.T) {
	n := NewNative(capability.Default())

	// Same snapshot, only the source preference differs: the notes rule
	// outranks the files rule when notes are allowed.
	entities := model.EntityBag{model.EntityTopic: "offsite"}

	got, err := n.Decide(model.IntentSummarize, entities, model.ConstraintBag{
		model.ConstraintSourcePreference: model.SourceNotes,
	})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if got.Tool != model.ToolSearchNotes {
		t.Errorf("notes preference routed to %q", got.Tool)
	}

	got, err = n.Decide(model.IntentSummarize, entities, model.ConstraintBag{
		model.ConstraintSourcePreference: model.SourceFiles,
	})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if got.Tool != model.ToolSearchFiles {
		t.Errorf("files preference routed to %q", got.Tool)
	}
	if v, _ := got.Args.Get("scope"); v != "user" {
		t.Errorf("scope arg = %q, want user default", v)
	}

	// No preference defaults to either, which the notes rule accepts.
	got, err = n.Decide(model.IntentFind, model.EntityBag{model.EntityQuery: "budget"}, model.ConstraintBag{})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if got.Tool != model.ToolSearchNotes {
		t.Errorf("default preference routed to %q, want %q", got.Tool, model.ToolSearchNotes)
	}
}

func TestNative_NeedInfoPrecedence(t *testing.T) {
	n := NewNative(capability.Default())

	// With neither location nor date, the location question wins because
	// its predicate sits first.
	got, err := n.Decide(model.IntentWeather, model.EntityBag{}, model.ConstraintBag{})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if got.Kind != model.DecisionNeedInfo || got.Missing != model.EntityLocation {
		t.Errorf("decision = %s, want need_info for location", got.Canonical())
	}

	// With a location the date question fires instead.
	got, err = n.Decide(model.IntentWeather, model.EntityBag{model.EntityLocation: "paris"}, model.ConstraintBag{})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if got.Kind != model.DecisionNeedInfo || got.Missing != model.EntityDate {
		t.Errorf("decision = %s, want need_info for date", got.Canonical())
	}
}

func TestNative_ArgOrder(t *testing.T) {
	n := NewNative(capability.Default())

	got, err := n.Decide(model.IntentRemind, model.EntityBag{
		model.EntityTopic: "file taxes",
		model.EntityDate:  "2026-03-01",
	}, model.ConstraintBag{})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	want := `route(create_todo, title="file taxes", due="2026-03-01", priority="normal")`
	if got.Canonical() != want {
		t.Errorf("Canonical() = %s, want %s", got.Canonical(), want)
	}
}

func TestNative_Determinism(t *testing.T) {
	n := NewNative(capability.Default())
	entities := model.EntityBag{model.EntityTopic: "offsite", model.EntityQuery: "offsite notes"}

	first, err := n.Decide(model.IntentSummarize, entities, model.ConstraintBag{})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	for i := 0; i < 100; i++ {
		got, err := n.Decide(model.IntentSummarize, entities, model.ConstraintBag{})
		if err != nil {
			t.Fatalf("Decide() error = %v", err)
		}
		if !got.Equal(first) {
			t.Fatalf("iteration %d: %s != %s", i, got.Canonical(), first.Canonical())
		}
	}
}

func TestNative_UnknownIntent(t *testing.T) {
	n := NewNative(capability.Default())

	got, err := n.Decide(model.IntentUnknown, model.EntityBag{model.EntityTopic: "anything"}, model.ConstraintBag{})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if got.Kind != model.DecisionNoMatch {
		t.Errorf("decision = %s, want no_match", got.Canonical())
	}
}

func TestNative_UndeclaredTool(t *testing.T) {
	// A registry missing get_weather must surface a hard error, not a
	// silent no_match: the catalogue and registry disagree.
	n := NewNative(capability.New([]model.Capability{
		{Tool: model.ToolSearchNotes, Tag: "search(notes)"},
	}))

	_, err := n.Decide(model.IntentWeather, model.EntityBag{
		model.EntityLocation: "paris",
		model.EntityDate:     "today",
	}, model.ConstraintBag{})
	if err == nil {
		t.Fatal("expected error for undeclared tool")
	}
}

// failingEngine always errors, standing in for a broken backend tier.
type failingEngine struct{}

func (failingEngine) Decide(model.Intent, model.EntityBag, model.ConstraintBag) (model.RoutingDecision, error) {
	return model.RoutingDecision{}, errors.New("backend unavailable")
}

func (failingEngine) Name() string { return "failing" }

func TestChain_FallsBackOnce(t *testing.T) {
	chain := NewChain(log.Noop(), failingEngine{}, NewNative(capability.Default()), NewStub())

	result, err := chain.Decide(context.Background(), model.IntentWeather, model.EntityBag{
		model.EntityLocation: "hanoi",
		model.EntityDate:     "today",
	}, model.ConstraintBag{})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if result.Backend != "native" {
		t.Errorf("backend = %q, want native", result.Backend)
	}
	if result.Decision.Tool != model.ToolGetWeather {
		t.Errorf("tool = %q, want %q", result.Decision.Tool, model.ToolGetWeather)
	}
}

func TestChain_StubTerminates(t *testing.T) {
	chain := NewChain(log.Noop(), failingEngine{}, NewStub())

	result, err := chain.Decide(context.Background(), model.IntentWeather, model.EntityBag{}, model.ConstraintBag{})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if result.Backend != model.TierStub {
		t.Errorf("backend = %q, want %q", result.Backend, model.TierStub)
	}
	if result.Decision.Kind != model.DecisionNoMatch {
		t.Errorf("decision = %s, want no_match", result.Decision.Canonical())
	}
}

func TestChain_AllFail(t *testing.T) {
	chain := NewChain(log.Noop(), failingEngine{}, failingEngine{})

	_, err := chain.Decide(context.Background(), model.IntentWeather, model.EntityBag{}, model.ConstraintBag{})
	if err == nil {
		t.Fatal("expected error when every backend fails")
	}
}
