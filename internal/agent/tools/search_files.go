package tools

import (
	"context"
	"fmt"

	"personal-agent/internal/agent"
	"personal-agent/internal/model"
	"personal-agent/internal/notes"
)

// SearchFilesTool searches the user's document folder.
type SearchFilesTool struct {
	repo notes.Repository
}

// NewSearchFilesTool creates a search tool over a file-backed repository.
func NewSearchFilesTool(repo notes.Repository) agent.Tool {
	return &SearchFilesTool{repo: repo}
}

func (t *SearchFilesTool) Name() string {
	return model.ToolSearchFiles
}

func (t *SearchFilesTool) Description() string {
	return "Search the user's files with a text query. Returns matching files with their content."
}

func (t *SearchFilesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Text to search for",
			},
			"scope": map[string]interface{}{
				"type":        "string",
				"description": "Search scope (currently only 'user')",
				"default":     "user",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchFilesTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	results, err := t.repo.Search(ctx, notes.SearchOptions{Query: query})
	if err != nil {
		return nil, fmt.Errorf("file search failed: %w", err)
	}

	out := formatNotes(results)
	out["scope"] = scopeParam(params)
	return out, nil
}

func scopeParam(params map[string]interface{}) string {
	if s, ok := params["scope"].(string); ok && s != "" {
		return s
	}
	return "user"
}
