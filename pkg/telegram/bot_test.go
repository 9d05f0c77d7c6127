package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-agent/pkg/telegram"
)

// newAPIServer fakes the Bot API: payloads carrying "boom" fail with a
// description, "crash" fails with a bare 500.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)

		probe, _ := req["url"].(string)
		if probe == "" {
			probe, _ = req["text"].(string)
		}

		switch probe {
		case "boom":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "description": "bad request payload"}`))
		case "crash":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"ok": true}`))
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestBot_SetWebhook(t *testing.T) {
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(newAPIServer(t).URL)

	if err := bot.SetWebhook("https://example.com/webhook/telegram"); err != nil {
		t.Fatalf("SetWebhook: %v", err)
	}

	err := bot.SetWebhook("boom")
	if err == nil || !strings.Contains(err.Error(), "bad request payload") {
		t.Errorf("want description in error, got %v", err)
	}

	if err := bot.SetWebhook("crash"); err == nil {
		t.Error("want error on bare 500")
	}
}

func TestBot_SendMessage(t *testing.T) {
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(newAPIServer(t).URL)

	if err := bot.SendMessage(12345, "hello"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if err := bot.SendMessageWithMode(12345, "hello", "Markdown"); err != nil {
		t.Fatalf("SendMessageWithMode: %v", err)
	}

	err := bot.SendMessage(12345, "boom")
	if err == nil || !strings.Contains(err.Error(), "bad request payload") {
		t.Errorf("want description in error, got %v", err)
	}

	if err := bot.SendMessage(12345, "crash"); err == nil {
		t.Error("want error on bare 500")
	}
}

func TestBot_NetworkFailure(t *testing.T) {
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL("http://127.0.0.1:1")

	if err := bot.SendMessage(12345, "hello"); err == nil {
		t.Error("want error on unreachable host")
	}
}
