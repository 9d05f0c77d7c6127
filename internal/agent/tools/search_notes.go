package tools

import (
	"context"
	"fmt"

	"personal-agent/internal/agent"
	"personal-agent/internal/model"
	"personal-agent/internal/notes"
)

// SearchNotesTool searches the user's notes.
type SearchNotesTool struct {
	repo notes.Repository
}

// NewSearchNotesTool creates a search tool over the given notes backend.
// Wrap backends with agent.NewTiered to get Memos-then-local fallback.
func NewSearchNotesTool(repo notes.Repository) agent.Tool {
	return &SearchNotesTool{repo: repo}
}

func (t *SearchNotesTool) Name() string {
	return model.ToolSearchNotes
}

func (t *SearchNotesTool) Description() string {
	return "Search the user's notes with a text query. Returns matching notes with their content."
}

func (t *SearchNotesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Text to search for",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of results (default 10)",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchNotesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	limit := notes.DefaultSearchLimit
	if l, ok := params["limit"].(float64); ok {
		limit = int(l)
	}

	results, err := t.repo.Search(ctx, notes.SearchOptions{Query: query, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("notes search failed: %w", err)
	}

	return formatNotes(results), nil
}

// formatNotes shapes search results for the oracle.
func formatNotes(results []model.Note) map[string]interface{} {
	entries := make([]map[string]interface{}, 0, len(results))
	for _, note := range results {
		entries = append(entries, map[string]interface{}{
			"id":      note.ID,
			"content": note.Content,
			"source":  note.Source,
		})
	}
	return map[string]interface{}{
		"count":   len(entries),
		"results": entries,
	}
}
