// Package local is the filesystem fallback behind the Memos notes backend:
// a directory of plain markdown files, no daemon required.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"personal-agent/internal/model"
	"personal-agent/internal/notes"
)

// todoFile collects reminders appended by CreateTodo.
const todoFile = "todos.md"

type notesRepository struct {
	root string
	mu   sync.Mutex
}

var _ notes.Repository = (*notesRepository)(nil)

// NewRepository creates a notes repository over a directory of markdown
// files. The directory is created if missing.
func NewRepository(root string) (notes.Repository, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("local notes: create root: %w", err)
	}
	return &notesRepository{root: root}, nil
}

// Search scans every markdown file under the root for the query.
func (r *notesRepository) Search(ctx context.Context, opt notes.SearchOptions) ([]model.Note, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = notes.DefaultSearchLimit
	}

	query := strings.ToLower(strings.TrimSpace(opt.Query))
	var results []model.Note

	err := filepath.WalkDir(r.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !isNoteFile(path) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		content := string(data)
		if query != "" && !strings.Contains(strings.ToLower(content), query) {
			return nil
		}

		rel, _ := filepath.Rel(r.root, path)
		note := model.Note{
			ID:      rel,
			Content: content,
			Source:  "local",
		}
		if info, err := d.Info(); err == nil {
			note.UpdatedAt = info.ModTime()
		}
		results = append(results, note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("local notes search: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].UpdatedAt.After(results[j].UpdatedAt)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Create writes the content to a timestamped markdown file.
func (r *notesRepository) Create(_ context.Context, content string) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := fmt.Sprintf("note-%d.md", time.Now().UnixNano())
	path := filepath.Join(r.root, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return model.Note{}, fmt.Errorf("local notes create: %w", err)
	}

	return model.Note{ID: name, Content: content, Source: "local", UpdatedAt: time.Now()}, nil
}

// CreateTodo appends a checkbox line to todos.md.
func (r *notesRepository) CreateTodo(_ context.Context, opt notes.CreateTodoOptions) (model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := filepath.Join(r.root, todoFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return model.Todo{}, fmt.Errorf("local notes create todo: %w", err)
	}
	defer f.Close()

	id := fmt.Sprintf("todo-%d", time.Now().UnixNano())
	line := fmt.Sprintf("- [ ] %s (due %s) #todo/%s\n", opt.Title, opt.Due.Format("2006-01-02"), opt.Priority)
	if _, err := f.WriteString(line); err != nil {
		return model.Todo{}, fmt.Errorf("local notes create todo: %w", err)
	}

	return model.Todo{
		ID:       id,
		Title:    opt.Title,
		Due:      opt.Due,
		Priority: opt.Priority,
		Link:     path,
	}, nil
}

func isNoteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".txt":
		return true
	default:
		return false
	}
}
