package tools

import (
	"context"
	"fmt"
	"time"

	"personal-agent/internal/agent"
	"personal-agent/internal/model"
)

// Canned terminal tiers. Each mirrors its live tool's name and schema but
// returns a fixed degraded answer instead of failing, so a fully offline
// deployment still completes runs.

// StubSearchTool answers any note or file search with an empty result set.
type StubSearchTool struct {
	name string
}

// NewStubSearchNotesTool creates the canned notes-search tier.
func NewStubSearchNotesTool() agent.Tool {
	return &StubSearchTool{name: model.ToolSearchNotes}
}

// NewStubSearchFilesTool creates the canned file-search tier.
func NewStubSearchFilesTool() agent.Tool {
	return &StubSearchTool{name: model.ToolSearchFiles}
}

func (t *StubSearchTool) Name() string        { return t.name }
func (t *StubSearchTool) Description() string { return "Search with a text query." }
func (t *StubSearchTool) TierLabel() string   { return model.TierStub }

func (t *StubSearchTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{"type": "string"},
		},
		"required": []string{"query"},
	}
}

func (t *StubSearchTool) Execute(_ context.Context, params map[string]interface{}) (interface{}, error) {
	query, _ := params["query"].(string)
	return map[string]interface{}{
		"count":   0,
		"results": []map[string]interface{}{},
		"note":    fmt.Sprintf("search is unavailable right now; nothing found for %q", query),
	}, nil
}

// StubWeatherTool returns a fixed no-data forecast.
type StubWeatherTool struct{}

// NewStubWeatherTool creates the canned weather tier.
func NewStubWeatherTool() agent.Tool {
	return &StubWeatherTool{}
}

func (t *StubWeatherTool) Name() string        { return model.ToolGetWeather }
func (t *StubWeatherTool) Description() string { return "Get the weather forecast." }
func (t *StubWeatherTool) TierLabel() string   { return model.TierStub }

func (t *StubWeatherTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"location": map[string]interface{}{"type": "string"},
			"date":     map[string]interface{}{"type": "string"},
		},
		"required": []string{"location", "date"},
	}
}

func (t *StubWeatherTool) Execute(_ context.Context, params map[string]interface{}) (interface{}, error) {
	location, _ := params["location"].(string)
	date, _ := params["date"].(string)
	return map[string]interface{}{
		"location": location,
		"date":     date,
		"summary":  fmt.Sprintf("No live forecast available for %s on %s.", location, date),
	}, nil
}

// StubTodoTool acknowledges the reminder without persisting it anywhere.
type StubTodoTool struct{}

// NewStubTodoTool creates the canned reminder tier.
func NewStubTodoTool() agent.Tool {
	return &StubTodoTool{}
}

func (t *StubTodoTool) Name() string        { return model.ToolCreateTodo }
func (t *StubTodoTool) Description() string { return "Create a reminder." }
func (t *StubTodoTool) TierLabel() string   { return model.TierStub }

func (t *StubTodoTool) Parameters() map[string]interface{} {
	return todoSchema()
}

func (t *StubTodoTool) Execute(_ context.Context, params map[string]interface{}) (interface{}, error) {
	title, _ := params["title"].(string)
	due, _ := params["due"].(string)
	return map[string]interface{}{
		"id":       fmt.Sprintf("pending-%d", time.Now().Unix()),
		"title":    title,
		"due":      due,
		"priority": "normal",
		"note":     "reminder stores are unavailable; this reminder was not persisted",
	}, nil
}
