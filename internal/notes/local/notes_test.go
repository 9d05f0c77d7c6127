package local_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"personal-agent/internal/notes"
	"personal-agent/internal/notes/local"
)

func TestLocalRepository_Search(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "offsite.md"), []byte("Offsite agenda: venue, budget"), 0o644)
	os.WriteFile(filepath.Join(dir, "groceries.md"), []byte("milk, eggs"), 0o644)
	os.WriteFile(filepath.Join(dir, "image.png"), []byte("binary"), 0o644)

	repo, err := local.NewRepository(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("matches content case-insensitively", func(t *testing.T) {
		results, err := repo.Search(context.Background(), notes.SearchOptions{Query: "OFFSITE"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if results[0].ID != "offsite.md" {
			t.Errorf("unexpected note ID: %s", results[0].ID)
		}
		if results[0].Source != "local" {
			t.Errorf("source = %s, want local", results[0].Source)
		}
	})

	t.Run("ignores non-note files", func(t *testing.T) {
		results, err := repo.Search(context.Background(), notes.SearchOptions{Query: "binary"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected 0 results, got %d", len(results))
		}
	})

	t.Run("empty query returns everything up to limit", func(t *testing.T) {
		results, err := repo.Search(context.Background(), notes.SearchOptions{Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("expected limit to cap results, got %d", len(results))
		}
	})
}

func TestLocalRepository_Create(t *testing.T) {
	repo, err := local.NewRepository(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	note, err := repo.Create(context.Background(), "meeting notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := repo.Search(context.Background(), notes.SearchOptions{Query: "meeting"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].ID != note.ID {
		t.Errorf("created note not found via search")
	}
}

func TestLocalRepository_CreateTodo(t *testing.T) {
	dir := t.TempDir()
	repo, err := local.NewRepository(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	due := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)
	todo, err := repo.CreateTodo(context.Background(), notes.CreateTodoOptions{
		Title:    "file taxes",
		Due:      due,
		Priority: "high",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo.Title != "file taxes" {
		t.Errorf("unexpected title: %s", todo.Title)
	}

	data, err := os.ReadFile(filepath.Join(dir, "todos.md"))
	if err != nil {
		t.Fatalf("todos.md not written: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "file taxes") || !strings.Contains(line, "2026-02-13") || !strings.Contains(line, "#todo/high") {
		t.Errorf("unexpected todo line: %q", line)
	}
}
