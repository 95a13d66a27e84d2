package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/parknow/internal/persistence"
)

type fakeFeedbackStore struct {
	entries []persistence.Feedback
	nextID  int64
}

func (s *fakeFeedbackStore) CreateFeedback(ctx context.Context, userID int64, subject, message string, rating float64) (persistence.Feedback, error) {
	s.nextID++
	entry := persistence.Feedback{ID: s.nextID, UserID: userID, Subject: subject, Message: message, Rating: rating}
	s.entries = append(s.entries, entry)
	return entry, nil
}

func (s *fakeFeedbackStore) ListFeedbackForUser(ctx context.Context, userID int64) ([]persistence.Feedback, error) {
	var out []persistence.Feedback
	for _, entry := range s.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func TestFeedbackService_Submit(t *testing.T) {
	store := &fakeFeedbackStore{}
	service := NewFeedbackService(store, nil)

	entry, err := service.Submit(context.Background(), testIdentity(), FeedbackInput{
		Subject: "  Great app  ",
		Message: "Finding parking was easy.",
		Rating:  4.5,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if entry.Subject != "Great app" {
		t.Errorf("expected trimmed subject, got %q", entry.Subject)
	}
	if len(store.entries) != 1 {
		t.Fatalf("expected one stored entry, got %d", len(store.entries))
	}
}

func TestFeedbackService_SubmitValidation(t *testing.T) {
	service := NewFeedbackService(&fakeFeedbackStore{}, nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		input FeedbackInput
		field string
	}{
		{"missing subject", FeedbackInput{Message: "m", Rating: 3}, "subject"},
		{"missing message", FeedbackInput{Subject: "s", Rating: 3}, "message"},
		{"rating too low", FeedbackInput{Subject: "s", Message: "m", Rating: 0.5}, "rating"},
		{"rating too high", FeedbackInput{Subject: "s", Message: "m", Rating: 5.5}, "rating"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Submit(ctx, testIdentity(), tc.input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := vErr.FieldErrors[tc.field]; !ok {
				t.Fatalf("expected error on field %q, got %v", tc.field, vErr.FieldErrors)
			}
		})
	}

	// Boundary ratings are accepted.
	for _, rating := range []float64{1.0, 5.0} {
		if _, err := service.Submit(ctx, testIdentity(), FeedbackInput{Subject: "s", Message: "m", Rating: rating}); err != nil {
			t.Errorf("expected rating %v to be accepted, got %v", rating, err)
		}
	}
}

func TestFeedbackService_SubmitRequiresIdentity(t *testing.T) {
	service := NewFeedbackService(&fakeFeedbackStore{}, nil)

	_, err := service.Submit(context.Background(), Identity{}, FeedbackInput{Subject: "s", Message: "m", Rating: 3})
	if !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("expected ErrMissingIdentity, got %v", err)
	}
}

func TestFeedbackService_History(t *testing.T) {
	store := &fakeFeedbackStore{}
	service := NewFeedbackService(store, nil)
	ctx := context.Background()
	identity := testIdentity()

	if _, err := store.CreateFeedback(ctx, identity.UserID, "Mine", "m", 4); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := store.CreateFeedback(ctx, 99, "Other", "m", 2); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	entries, err := service.History(ctx, identity)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Subject != "Mine" {
		t.Fatalf("unexpected history: %v", entries)
	}
}
