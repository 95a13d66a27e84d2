package sqlite

import (
	"context"
	"testing"
	"time"
)

func TestFeedbackRepository_CreateFeedback(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Reviewer", "reviewer@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	fixed := time.Date(2024, time.April, 10, 12, 30, 0, 0, time.UTC)
	store.Feedback.now = func() time.Time { return fixed }

	entry, err := store.Feedback.CreateFeedback(ctx, user.ID, "Great spot", "Easy to find parking.", 4.5)
	if err != nil {
		t.Fatalf("CreateFeedback failed: %v", err)
	}
	if entry.ID <= 0 {
		t.Fatalf("expected positive feedback id, got %d", entry.ID)
	}
	if entry.Rating != 4.5 {
		t.Errorf("expected rating to round-trip, got %v", entry.Rating)
	}
	if entry.Timestamp != "2024-04-10 12:30:00" {
		t.Errorf("expected store assigned timestamp, got %q", entry.Timestamp)
	}
}

func TestFeedbackRepository_ListNewestFirst(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Reviewer", "reviewer@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	current := time.Date(2024, time.April, 1, 8, 0, 0, 0, time.UTC)
	store.Feedback.now = func() time.Time { return current }

	subjects := []string{"First", "Second", "Third"}
	for _, subject := range subjects {
		if _, err := store.Feedback.CreateFeedback(ctx, user.ID, subject, "msg", 3.0); err != nil {
			t.Fatalf("CreateFeedback failed: %v", err)
		}
		current = current.Add(time.Hour)
	}

	entries, err := store.Feedback.ListFeedbackForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListFeedbackForUser failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Subject != "Third" || entries[2].Subject != "First" {
		t.Errorf("expected newest first ordering, got %q .. %q", entries[0].Subject, entries[2].Subject)
	}
}
