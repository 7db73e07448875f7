package history

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func TestAppendAndList(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	payload, _ := json.Marshal(GeneratedPayload{Template: "templates/memo.docx"})
	events := []*Event{
		{Type: EventTypeSessionStarted, Detail: "session started"},
		{Type: EventTypeDocumentGenerated, Path: "output/memo.docx", Payload: payload},
		{Type: EventTypeFileDeleted, Path: "old.docx"},
	}
	for i, event := range events {
		event.Timestamp = time.Date(2025, 5, 27, 12, 0, i, 0, time.UTC)
		if err := repo.Append(ctx, event); err != nil {
			t.Fatalf("Append: %v", err)
		}
		if event.ID == "" {
			t.Fatalf("Append must assign an ID")
		}
	}

	got, err := repo.List(ctx, Query{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Type != EventTypeFileDeleted || got[2].Type != EventTypeSessionStarted {
		t.Fatalf("unexpected order: %v %v %v", got[0].Type, got[1].Type, got[2].Type)
	}
	if string(got[1].Payload) != string(payload) {
		t.Fatalf("payload not round-tripped: %s", got[1].Payload)
	}
}

func TestListFilters(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 5, 27, 12, 0, 0, 0, time.UTC)
	for i, eventType := range []EventType{EventTypeFileCopied, EventTypeFileCopied, EventTypeFileMoved} {
		err := repo.Append(ctx, &Event{Type: eventType, Timestamp: base.Add(time.Duration(i) * time.Minute)})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	copied := EventTypeFileCopied
	got, err := repo.List(ctx, Query{Type: &copied})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 copied events, got %d", len(got))
	}

	since := base.Add(90 * time.Second)
	got, err = repo.List(ctx, Query{Since: &since})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Type != EventTypeFileMoved {
		t.Fatalf("unexpected since filter result: %#v", got)
	}

	got, err = repo.List(ctx, Query{Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected limit 1, got %d", len(got))
	}
}

func TestAppendRejectsMissingType(t *testing.T) {
	repo := openTestRepo(t)
	if err := repo.Append(context.Background(), &Event{}); err == nil {
		t.Fatalf("expected error for missing type")
	}
}
