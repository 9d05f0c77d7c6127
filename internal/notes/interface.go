// Package notes defines the note storage contract shared by the Memos and
// local filesystem backends.
package notes

import (
	"context"

	"personal-agent/internal/model"
)

// Repository is the interface for note data access operations.
type Repository interface {
	// Search returns notes whose content matches the query.
	Search(ctx context.Context, opt SearchOptions) ([]model.Note, error)

	// Create persists a new note.
	Create(ctx context.Context, content string) (model.Note, error)

	// CreateTodo persists a reminder.
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (model.Todo, error)
}
