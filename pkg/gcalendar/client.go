package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a client from a credentials JSON
// file, accepting either a service account or an OAuth desktop-app file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a client from raw credentials
// JSON bytes. Service account credentials are tried first; OAuth
// desktop-app credentials need a token.json minted by scripts/gcal-auth.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	if source, err := serviceAccountSource(ctx, credentialsJSON); err == nil {
		return newClient(ctx, source)
	}

	source, err := installedAppSource(ctx, credentialsJSON)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, source)
}

// NewClientFromHTTP creates a client over a pre-configured HTTP client,
// used by tests to point at a fake API server.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func newClient(ctx context.Context, source oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func serviceAccountSource(ctx context.Context, credentialsJSON []byte) (oauth2.TokenSource, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, err
	}
	return config.TokenSource(ctx), nil
}

func installedAppSource(ctx context.Context, credentialsJSON []byte) (oauth2.TokenSource, error) {
	var creds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil || creds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format")
	}

	tokenData, err := os.ReadFile("token.json")
	if err != nil {
		return nil, fmt.Errorf("OAuth desktop credentials need token.json (run scripts/gcal-auth): %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}
	return oauthConfig.TokenSource(ctx, &tok), nil
}

// CreateEvent inserts an event into the calendar.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns events within the requested time range, ordered
// by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	listed, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(listed.Items))
	for _, item := range listed.Items {
		events = append(events, Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
			StartTime:   parseEventTime(item.Start),
			EndTime:     parseEventTime(item.End),
			Location:    item.Location,
		})
	}
	return events, nil
}

func calendarID(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}

// parseEventTime handles both all-day (date) and timed (dateTime) events.
func parseEventTime(edt *calendar.EventDateTime) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
