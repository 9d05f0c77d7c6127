package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-agent/pkg/gemini"
)

func TestConfig_Validate(t *testing.T) {
	cfg := gemini.Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing API key")
	}

	cfg = gemini.Config{APIKey: "test-api-key"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", cfg.Model)
	}
	if cfg.APIURL != gemini.DefaultAPIURL {
		t.Errorf("expected default API URL, got %s", cfg.APIURL)
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Mock command embedded in the user text
		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{
		APIKey: "test-api-key",
		Model:  "gemini-2.5-flash",
		APIURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		req := &gemini.Request{
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Parts[0].Text != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Content.Parts[0].Text)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := &gemini.Request{
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Function Call Flow", func(t *testing.T) {
		req := &gemini.Request{
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "call a tool"}}},
			},
			Tools: []gemini.Tool{
				{
					Name:        "get_weather",
					Description: "Fetch a weather report",
					Parameters: map[string]interface{}{
						"type": "object",
					},
				},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Usage == nil {
			t.Errorf("expected non-nil usage")
		}
	})
}
