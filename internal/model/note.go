package model

import "time"

// Note is a single note from whichever backing store served it.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Source names the store the note came from ("memos", "local").
	Source string `json:"source,omitempty"`
}

// Todo is a persisted reminder.
type Todo struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Due      time.Time `json:"due"`
	Priority string    `json:"priority"`
	Link     string    `json:"link,omitempty"`
}
