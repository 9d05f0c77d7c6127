package usecase

import (
	"encoding/json"
	"fmt"
)

// renderAnswer turns a routed tool result into a user-facing line. Tool
// outputs are maps; well-known keys get a friendly rendering and the rest
// fall back to JSON.
func renderAnswer(tool string, output interface{}) string {
	result, ok := output.(map[string]interface{})
	if !ok {
		return fmt.Sprintf("%v", output)
	}

	for _, key := range []string{"summary", "draft", "note"} {
		if text, ok := result[key].(string); ok && text != "" {
			return text
		}
	}
	if count, ok := result["count"]; ok {
		return fmt.Sprintf("%s found %v result(s).", tool, count)
	}
	if title, ok := result["title"].(string); ok {
		if due, ok := result["due"].(string); ok {
			return fmt.Sprintf("Created reminder %q due %s.", title, due)
		}
	}

	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(b)
}
