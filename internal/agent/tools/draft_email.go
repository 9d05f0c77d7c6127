package tools

import (
	"context"
	"fmt"

	"personal-agent/internal/agent"
	"personal-agent/internal/model"
)

// DraftEmailTool composes an email draft locally. It never sends anything.
type DraftEmailTool struct{}

// NewDraftEmailTool creates the draft tool.
func NewDraftEmailTool() agent.Tool {
	return &DraftEmailTool{}
}

func (t *DraftEmailTool) Name() string {
	return model.ToolDraftEmail
}

func (t *DraftEmailTool) Description() string {
	return "Compose an email draft for the user to review. Does not send."
}

func (t *DraftEmailTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"to": map[string]interface{}{
				"type":        "string",
				"description": "Recipient name or address",
			},
			"subject": map[string]interface{}{
				"type":        "string",
				"description": "Subject line",
				"default":     "(no subject)",
			},
			"body": map[string]interface{}{
				"type":        "string",
				"description": "Body text, may be empty",
			},
		},
		"required": []string{"to"},
	}
}

func (t *DraftEmailTool) Execute(_ context.Context, params map[string]interface{}) (interface{}, error) {
	to, ok := params["to"].(string)
	if !ok || to == "" {
		return nil, fmt.Errorf("to parameter is required")
	}

	subject := "(no subject)"
	if s, ok := params["subject"].(string); ok && s != "" {
		subject = s
	}
	body, _ := params["body"].(string)

	draft := fmt.Sprintf("To: %s\nSubject: %s\n\n%s", to, subject, body)
	return map[string]interface{}{
		"to":      to,
		"subject": subject,
		"body":    body,
		"draft":   draft,
	}, nil
}
