package usecase

import (
	"context"
	"errors"
	"testing"

	"personal-agent/internal/agent"
	"personal-agent/internal/agent/orchestrator"
	"personal-agent/internal/assistant"
	"personal-agent/internal/capability"
	"personal-agent/internal/extractor"
	"personal-agent/internal/model"
	"personal-agent/internal/oracle"
	"personal-agent/internal/routing"
	"personal-agent/pkg/log"
)

type fakeTool struct {
	name   string
	output map[string]interface{}
	err    error
	calls  int
}

func (t *fakeTool) Name() string                       { return t.name }
func (t *fakeTool) Description() string                { return "test tool" }
func (t *fakeTool) Parameters() map[string]interface{} { return map[string]interface{}{} }
func (t *fakeTool) Execute(context.Context, map[string]interface{}) (interface{}, error) {
	t.calls++
	if t.err != nil {
		return nil, t.err
	}
	return t.output, nil
}

func newTestUseCase(tools ...agent.Tool) *implUseCase {
	heuristic := extractor.NewHeuristic()
	engine := routing.NewChain(log.Noop(), routing.NewNative(capability.Default()), routing.NewStub())

	registry := agent.NewToolRegistry()
	for _, tool := range tools {
		registry.Register(tool)
	}

	stub := oracle.NewStub(heuristic, engine, log.Noop())
	orch := orchestrator.New(stub, registry, log.Noop(), orchestrator.Config{OraclePerMinute: 60000})

	return New(log.Noop(), heuristic, engine, registry, orch)
}

func TestRoute(t *testing.T) {
	uc := newTestUseCase()
	sc := model.Scope{UserID: "u1"}

	out, err := uc.Route(context.Background(), sc, assistant.RouteInput{
		Text: "what's the weather in Paris tomorrow",
	})
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	if out.Intent != model.IntentWeather {
		t.Errorf("intent = %s, want weather", out.Intent)
	}
	if out.Decision.Tool != model.ToolGetWeather {
		t.Errorf("tool = %q, want %q", out.Decision.Tool, model.ToolGetWeather)
	}
	if out.Backend != "native" {
		t.Errorf("backend = %q, want native", out.Backend)
	}

	_, err = uc.Route(context.Background(), sc, assistant.RouteInput{Text: "   "})
	if !errors.Is(err, assistant.ErrEmptyInput) {
		t.Errorf("empty input error = %v, want ErrEmptyInput", err)
	}
}

func TestChat_RoutedDispatch(t *testing.T) {
	weather := &fakeTool{
		name:   model.ToolGetWeather,
		output: map[string]interface{}{"summary": "Sunny, 18-24°C"},
	}
	uc := newTestUseCase(weather)

	out, err := uc.Chat(context.Background(), model.Scope{UserID: "u1"}, assistant.ChatInput{
		Text: "what's the weather in Paris tomorrow",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.Mode != assistant.ModeRouted {
		t.Errorf("mode = %q, want routed", out.Mode)
	}
	if out.Answer != "Sunny, 18-24°C" {
		t.Errorf("answer = %q", out.Answer)
	}
	if out.Tool != model.ToolGetWeather || out.Tier != model.TierPrimary {
		t.Errorf("tool/tier = %q/%q", out.Tool, out.Tier)
	}
	if weather.calls != 1 {
		t.Errorf("tool called %d times, want 1", weather.calls)
	}
}

func TestChat_NeedInfo(t *testing.T) {
	uc := newTestUseCase()

	out, err := uc.Chat(context.Background(), model.Scope{UserID: "u1"}, assistant.ChatInput{
		Text: "what's the weather like",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if !out.IsQuestion {
		t.Fatal("expected a clarifying question")
	}
	if out.Answer == "" {
		t.Error("question text is empty")
	}
	if len(out.Events) != 0 {
		t.Errorf("need-info answered without the agent, got %d events", len(out.Events))
	}
}

func TestChat_NoMatchRunsAgent(t *testing.T) {
	uc := newTestUseCase()

	out, err := uc.Chat(context.Background(), model.Scope{UserID: "u1"}, assistant.ChatInput{
		Text:     "sing me a song",
		MaxTurns: 3,
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.Mode != assistant.ModeAgent {
		t.Errorf("mode = %q, want agent", out.Mode)
	}
	if out.Answer != "Sorry, I don't have a tool for that yet." {
		t.Errorf("answer = %q", out.Answer)
	}
	if len(out.Events) == 0 {
		t.Error("agent path produced no events")
	}
	last := out.Events[len(out.Events)-1]
	if last.Type != model.EventFinalAnswer {
		t.Errorf("last event = %s, want final_answer", last.Type)
	}
}

func TestChat_ToolFailure(t *testing.T) {
	weather := &fakeTool{name: model.ToolGetWeather, err: errors.New("api down")}
	uc := newTestUseCase(weather)

	_, err := uc.Chat(context.Background(), model.Scope{UserID: "u1"}, assistant.ChatInput{
		Text: "what's the weather in Paris tomorrow",
	})
	if !errors.Is(err, assistant.ErrToolExecution) {
		t.Errorf("error = %v, want ErrToolExecution", err)
	}
}

func TestChat_EmptyInput(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Chat(context.Background(), model.Scope{UserID: "u1"}, assistant.ChatInput{Text: ""})
	if !errors.Is(err, assistant.ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}
