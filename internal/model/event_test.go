package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEvent_FailedToolResultKeepsSuccessFlag(t *testing.T) {
	ev := Event{
		RunID:   "run-1",
		Turn:    2,
		Type:    EventToolResult,
		Tool:    "get_weather",
		Success: false,
		Output:  "forecast failed: geocoding error",
	}

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"success":false`) {
		t.Errorf("failed tool_result must carry an explicit success flag, got %s", data)
	}
}

func TestScope_Key(t *testing.T) {
	if got := (Scope{UserID: "u1"}).Key(); got != "u1" {
		t.Errorf("Key() = %q, want u1", got)
	}
	if got := (Scope{UserID: "u1", SessionID: "s1"}).Key(); got != "s1" {
		t.Errorf("Key() = %q, want s1 (session takes precedence)", got)
	}
}
