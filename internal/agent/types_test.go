package agent_test

import (
	"context"
	"errors"
	"testing"

	"personal-agent/internal/agent"
	"personal-agent/internal/model"
	"personal-agent/pkg/log"
)

type mockTool struct {
	name        string
	description string
	params      map[string]interface{}
	output      interface{}
	err         error
	stub        bool
	callCount   int
}

func (m *mockTool) Name() string                       { return m.name }
func (m *mockTool) Description() string                { return m.description }
func (m *mockTool) Parameters() map[string]interface{} { return m.params }
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	m.callCount++
	return m.output, m.err
}

func (m *mockTool) TierLabel() string {
	if m.stub {
		return model.TierStub
	}
	return ""
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	tool1 := &mockTool{name: "tool1", description: "desc1", params: nil}
	tool2 := &mockTool{name: "tool2", description: "desc2"}

	registry.Register(tool1)
	registry.Register(tool2)

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("tool1")
		if !ok || got.Name() != "tool1" {
			t.Errorf("expected tool1 to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		_, ok := registry.Get("missing")
		if ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List tools", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 2 {
			t.Errorf("expected 2 tools, got %d", len(tools))
		}
	})

	t.Run("Execute unknown tool", func(t *testing.T) {
		_, err := registry.Execute(context.Background(), "missing", nil)
		if !errors.Is(err, agent.ErrToolNotFound) {
			t.Errorf("expected ErrToolNotFound, got %v", err)
		}
	})

	t.Run("Execute plain tool reports primary tier", func(t *testing.T) {
		res, err := registry.Execute(context.Background(), "tool1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Tier != model.TierPrimary {
			t.Errorf("tier = %s, want primary", res.Tier)
		}
	})

	t.Run("ToFunctionDefinitions", func(t *testing.T) {
		defs := registry.ToFunctionDefinitions()
		if len(defs) != 2 {
			t.Fatalf("expected 2 tools, got %d", len(defs))
		}

		foundTool1 := false
		for _, tool := range defs {
			if tool.Name == "tool1" {
				foundTool1 = true
			}
		}

		if !foundTool1 {
			t.Errorf("expected tool1 to be in function definitions")
		}
	})
}

func TestTiered_FallbackOrder(t *testing.T) {
	primary := &mockTool{name: "get_weather", err: errors.New("upstream down")}
	secondary := &mockTool{name: "get_weather", err: errors.New("also down")}
	stub := &mockTool{name: "get_weather", output: "canned report", stub: true}

	tiered := agent.NewTiered(log.Noop(), primary, secondary, stub)

	res, err := tiered.ExecuteTiered(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Tier != model.TierStub {
		t.Errorf("tier = %s, want stub", res.Tier)
	}
	if res.Output != "canned report" {
		t.Errorf("output = %v, want canned report", res.Output)
	}
	if primary.callCount != 1 || secondary.callCount != 1 {
		t.Errorf("expected each earlier tier tried exactly once")
	}
}

func TestTiered_PrimaryWins(t *testing.T) {
	primary := &mockTool{name: "get_weather", output: "live report"}
	stub := &mockTool{name: "get_weather", output: "canned report", stub: true}

	tiered := agent.NewTiered(log.Noop(), primary, stub)

	res, err := tiered.ExecuteTiered(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Tier != model.TierPrimary {
		t.Errorf("tier = %s, want primary", res.Tier)
	}
	if stub.callCount != 0 {
		t.Errorf("stub should not run when primary succeeds")
	}
}

func TestTiered_AllTiersFail(t *testing.T) {
	primary := &mockTool{name: "get_weather", err: errors.New("primary down")}
	secondary := &mockTool{name: "get_weather", err: errors.New("secondary down")}

	tiered := agent.NewTiered(log.Noop(), primary, secondary)

	_, err := tiered.ExecuteTiered(context.Background(), nil)
	if err == nil {
		t.Fatalf("expected error when every tier fails")
	}
	if err.Error() != "secondary down" {
		t.Errorf("expected last tier error, got %v", err)
	}
}
