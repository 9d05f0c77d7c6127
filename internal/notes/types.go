package notes

import "time"

// SearchOptions defines note search parameters.
type SearchOptions struct {
	Query string
	Tag   string
	Limit int
}

// CreateTodoOptions defines the fields of a new reminder.
type CreateTodoOptions struct {
	Title    string
	Due      time.Time
	Priority string
}

// DefaultSearchLimit bounds search results when the caller gives no limit.
const DefaultSearchLimit = 10
