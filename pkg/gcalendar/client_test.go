package gcalendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

// rewriteTransport redirects all requests at a local fake server so the
// generated Google API client never touches the network.
type rewriteTransport struct {
	transport http.RoundTripper
	host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.transport.RoundTrip(req)
}

func newFakeCalendarServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "test-fail"):
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"code":500,"message":"backend error"}}`))
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/calendars/primary/events"):
			json.NewEncoder(w).Encode(map[string]any{
				"id":       "event-123",
				"htmlLink": "https://calendar.google.com/event-uri",
			})
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/calendars/primary/events"):
			json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{
						"id":      "event-1",
						"summary": "Existing Event",
						"start":   map[string]any{"date": "2024-05-01"},
						"end":     map[string]any{"date": "2024-05-02"},
					},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newFakeClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server URL: %v", err)
	}
	httpClient := &http.Client{Transport: &rewriteTransport{
		transport: http.DefaultTransport,
		host:      u.Host,
	}}
	client, err := NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("NewClientFromHTTP: %v", err)
	}
	return client
}

func TestNewClientFromCredentialsJSON_BrokenJSON(t *testing.T) {
	_, err := NewClientFromCredentialsJSON(context.Background(), []byte("{not json"))
	if err == nil {
		t.Fatal("expected error for broken credentials JSON")
	}
}

func TestNewClientFromCredentialsJSON_InstalledApp(t *testing.T) {
	creds := []byte(`{"installed":{"client_id":"id-1","client_secret":"secret-1","redirect_uris":["http://localhost"]}}`)

	t.Run("with valid token.json", func(t *testing.T) {
		token := `{"access_token":"tok","refresh_token":"ref","token_type":"Bearer","expiry":"2099-01-01T00:00:00Z"}`
		if err := os.WriteFile("token.json", []byte(token), 0o600); err != nil {
			t.Fatalf("write token.json: %v", err)
		}
		defer os.Remove("token.json")

		client, err := NewClientFromCredentialsJSON(context.Background(), creds)
		if err != nil {
			t.Fatalf("expected success with token.json present, got %v", err)
		}
		if client == nil {
			t.Fatal("expected non-nil client")
		}
	})

	t.Run("with broken token.json", func(t *testing.T) {
		if err := os.WriteFile("token.json", []byte("{broken"), 0o600); err != nil {
			t.Fatalf("write token.json: %v", err)
		}
		defer os.Remove("token.json")

		if _, err := NewClientFromCredentialsJSON(context.Background(), creds); err == nil {
			t.Fatal("expected error for unparsable token.json")
		}
	})

	t.Run("without token.json", func(t *testing.T) {
		os.Remove("token.json")
		if _, err := NewClientFromCredentialsJSON(context.Background(), creds); err == nil {
			t.Fatal("expected error when token.json is absent")
		}
	})
}

func TestNewClientFromCredentialsFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewClientFromCredentialsFile(context.Background(), "does-not-exist.json")
		if err == nil {
			t.Fatal("expected error for missing credentials file")
		}
	})

	t.Run("broken file", func(t *testing.T) {
		path := t.TempDir() + "/creds.json"
		if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
			t.Fatalf("write creds: %v", err)
		}
		if _, err := NewClientFromCredentialsFile(context.Background(), path); err == nil {
			t.Fatal("expected error for broken credentials file")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	srv := newFakeCalendarServer(t)
	defer srv.Close()
	client := newFakeClient(t, srv)

	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), CreateEventRequest{
		Summary:   "Team Sync",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.ID != "event-123" {
		t.Errorf("expected event ID event-123, got %q", event.ID)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected HtmlLink %q", event.HtmlLink)
	}
	if !event.StartTime.Equal(start) {
		t.Errorf("expected start time preserved, got %v", event.StartTime)
	}
}

func TestCreateEvent_ServerError(t *testing.T) {
	srv := newFakeCalendarServer(t)
	defer srv.Close()
	client := newFakeClient(t, srv)

	_, err := client.CreateEvent(context.Background(), CreateEventRequest{
		CalendarID: "test-fail",
		Summary:    "Doomed",
		StartTime:  time.Now(),
		EndTime:    time.Now().Add(time.Hour),
	})
	if err == nil {
		t.Fatal("expected error from server failure")
	}
}

func TestListEvents(t *testing.T) {
	srv := newFakeCalendarServer(t)
	defer srv.Close()
	client := newFakeClient(t, srv)

	events, err := client.ListEvents(context.Background(), ListEventsRequest{
		TimeMin:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		TimeMax:    time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Summary != "Existing Event" {
		t.Errorf("unexpected summary %q", events[0].Summary)
	}
	if events[0].StartTime.IsZero() {
		t.Error("expected all-day start date to be parsed")
	}
}

func TestListEvents_ServerError(t *testing.T) {
	srv := newFakeCalendarServer(t)
	defer srv.Close()
	client := newFakeClient(t, srv)

	_, err := client.ListEvents(context.Background(), ListEventsRequest{
		CalendarID: "test-fail",
		TimeMin:    time.Now(),
		TimeMax:    time.Now().Add(24 * time.Hour),
	})
	if err == nil {
		t.Fatal("expected error from server failure")
	}
}
