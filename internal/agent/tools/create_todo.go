package tools

import (
	"context"
	"fmt"
	"time"

	"personal-agent/internal/agent"
	"personal-agent/internal/model"
	"personal-agent/internal/notes"
	"personal-agent/pkg/datemath"
	"personal-agent/pkg/gcalendar"
)

// todoParams is the decoded input shared by both todo tiers.
type todoParams struct {
	Title    string
	Due      time.Time
	Priority string
}

func decodeTodoParams(params map[string]interface{}, dates *datemath.Parser) (todoParams, error) {
	title, ok := params["title"].(string)
	if !ok || title == "" {
		return todoParams{}, fmt.Errorf("title parameter is required")
	}
	rawDue, ok := params["due"].(string)
	if !ok || rawDue == "" {
		return todoParams{}, fmt.Errorf("due parameter is required")
	}

	due, err := dates.Parse(rawDue, time.Now())
	if err != nil {
		return todoParams{}, fmt.Errorf("unusable due date %q: %w", rawDue, err)
	}

	priority := "normal"
	if p, ok := params["priority"].(string); ok && p != "" {
		priority = p
	}

	return todoParams{Title: title, Due: due, Priority: priority}, nil
}

func todoSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "What the reminder is for",
			},
			"due": map[string]interface{}{
				"type":        "string",
				"description": "Due date in the user's words ('tomorrow', 'next friday') or YYYY-MM-DD",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"description": "Reminder priority",
				"default":     "normal",
			},
		},
		"required": []string{"title", "due"},
	}
}

// CreateTodoTool persists a reminder in the notes store.
type CreateTodoTool struct {
	repo  notes.Repository
	dates *datemath.Parser
}

// NewCreateTodoTool creates the notes-backed reminder tool.
func NewCreateTodoTool(repo notes.Repository, dates *datemath.Parser) agent.Tool {
	return &CreateTodoTool{repo: repo, dates: dates}
}

func (t *CreateTodoTool) Name() string {
	return model.ToolCreateTodo
}

func (t *CreateTodoTool) Description() string {
	return "Create a reminder with a title and a due date."
}

func (t *CreateTodoTool) Parameters() map[string]interface{} {
	return todoSchema()
}

func (t *CreateTodoTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	in, err := decodeTodoParams(params, t.dates)
	if err != nil {
		return nil, err
	}

	todo, err := t.repo.CreateTodo(ctx, notes.CreateTodoOptions{
		Title:    in.Title,
		Due:      in.Due,
		Priority: in.Priority,
	})
	if err != nil {
		return nil, fmt.Errorf("create todo failed: %w", err)
	}

	return formatTodo(todo), nil
}

// CalendarClient abstracts Google Calendar for mocking.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarTodoTool stores the reminder as an all-day calendar event. It is
// the secondary tier behind the notes-backed tool.
type CalendarTodoTool struct {
	calendar CalendarClient
	dates    *datemath.Parser
	timezone string
}

// NewCalendarTodoTool creates the calendar-backed reminder tool.
func NewCalendarTodoTool(calendar CalendarClient, dates *datemath.Parser, timezone string) agent.Tool {
	return &CalendarTodoTool{calendar: calendar, dates: dates, timezone: timezone}
}

func (t *CalendarTodoTool) Name() string {
	return model.ToolCreateTodo
}

func (t *CalendarTodoTool) Description() string {
	return "Create a reminder with a title and a due date."
}

func (t *CalendarTodoTool) Parameters() map[string]interface{} {
	return todoSchema()
}

func (t *CalendarTodoTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	in, err := decodeTodoParams(params, t.dates)
	if err != nil {
		return nil, err
	}

	event, err := t.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     in.Title,
		Description: fmt.Sprintf("Reminder (priority %s)", in.Priority),
		StartTime:   in.Due,
		EndTime:     t.dates.EndOfDay(in.Due),
		Timezone:    t.timezone,
	})
	if err != nil {
		return nil, fmt.Errorf("create calendar reminder failed: %w", err)
	}

	return formatTodo(model.Todo{
		ID:       event.ID,
		Title:    in.Title,
		Due:      in.Due,
		Priority: in.Priority,
		Link:     event.HtmlLink,
	}), nil
}

func formatTodo(todo model.Todo) map[string]interface{} {
	return map[string]interface{}{
		"id":       todo.ID,
		"title":    todo.Title,
		"due":      todo.Due.Format("2006-01-02"),
		"priority": todo.Priority,
		"link":     todo.Link,
	}
}
