package memos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-agent/internal/model"
	"personal-agent/internal/notes"
	"personal-agent/pkg/log"
)

// todoTag marks memos that represent reminders.
const todoTag = "todo"

type notesRepository struct {
	client *Client
	l      log.Logger
}

var _ notes.Repository = (*notesRepository)(nil)

// NewRepository creates a Memos-backed notes repository.
func NewRepository(client *Client, l log.Logger) notes.Repository {
	return &notesRepository{client: client, l: l}
}

// Search lists recent memos and filters them by query locally. The Memos
// list filter only matches tags, so content matching happens here.
func (r *notesRepository) Search(ctx context.Context, opt notes.SearchOptions) ([]model.Note, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = notes.DefaultSearchLimit
	}

	// Over-fetch so local content filtering still fills the page.
	memos, err := r.client.ListMemos(ctx, opt.Tag, limit*5)
	if err != nil {
		return nil, fmt.Errorf("memos search: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(opt.Query))
	results := make([]model.Note, 0, limit)
	for _, memo := range memos {
		if query != "" && !strings.Contains(strings.ToLower(memo.Content), query) {
			continue
		}
		results = append(results, toNote(memo))
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

// Create persists a new private memo.
func (r *notesRepository) Create(ctx context.Context, content string) (model.Note, error) {
	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    content,
		Visibility: "PRIVATE",
	})
	if err != nil {
		return model.Note{}, fmt.Errorf("memos create: %w", err)
	}
	return toNote(*memo), nil
}

// CreateTodo stores the reminder as a checkbox memo tagged #todo.
func (r *notesRepository) CreateTodo(ctx context.Context, opt notes.CreateTodoOptions) (model.Todo, error) {
	content := fmt.Sprintf("- [ ] %s (due %s) #%s/%s",
		opt.Title, opt.Due.Format("2006-01-02"), todoTag, opt.Priority)

	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    content,
		Visibility: "PRIVATE",
	})
	if err != nil {
		return model.Todo{}, fmt.Errorf("memos create todo: %w", err)
	}

	r.l.Infof(ctx, "memos: created todo %s due %s", memo.UID, opt.Due.Format("2006-01-02"))
	return model.Todo{
		ID:       memo.UID,
		Title:    opt.Title,
		Due:      opt.Due,
		Priority: opt.Priority,
		Link:     memo.Name,
	}, nil
}

func toNote(memo Memo) model.Note {
	note := model.Note{
		ID:      memo.UID,
		Content: memo.Content,
		Source:  "memos",
	}
	if t, err := time.Parse(time.RFC3339, memo.UpdateTime); err == nil {
		note.UpdatedAt = t
	}
	return note
}
