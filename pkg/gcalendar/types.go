package gcalendar

import "time"

// CreateEventRequest is the input for creating a calendar event.
// CalendarID defaults to "primary" when empty.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}

// Event is the simplified calendar event this service works with.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// ListEventsRequest bounds an event listing by time range.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
