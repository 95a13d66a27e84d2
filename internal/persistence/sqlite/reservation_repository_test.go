package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/example/parknow/internal/persistence"
)

func TestReservationRepository_CreateReservation(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Driver", "driver@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	reservation, err := store.Reservations.CreateReservation(ctx, user.ID, "Colombo Fort", "2024-01-02 15:04:05")
	if err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if reservation.ID <= 0 {
		t.Fatalf("expected positive reservation id, got %d", reservation.ID)
	}
	if reservation.SpotID != "Colombo Fort" {
		t.Errorf("expected spot id to round-trip, got %q", reservation.SpotID)
	}
}

func TestReservationRepository_RequiresSpot(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Driver", "driver@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err = store.Reservations.CreateReservation(ctx, user.ID, "", "2024-01-02 15:04:05")
	if !errors.Is(err, persistence.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation for empty spot, got %v", err)
	}
}

func TestReservationRepository_RejectsUnknownUser(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	_, err := store.Reservations.CreateReservation(ctx, 999, "Colombo Fort", "2024-01-02 15:04:05")
	if !errors.Is(err, persistence.ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation for unknown user, got %v", err)
	}
}

func TestReservationRepository_ListOrderedByTimestamp(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Driver", "driver@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	timestamps := []string{
		"2024-01-01 08:00:00",
		"2024-03-01 10:30:00",
		"2024-02-01 09:15:00",
	}
	for _, ts := range timestamps {
		if _, err := store.Reservations.CreateReservation(ctx, user.ID, "Galle Fort", ts); err != nil {
			t.Fatalf("CreateReservation failed: %v", err)
		}
	}

	reservations, err := store.Reservations.ListReservationsForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListReservationsForUser failed: %v", err)
	}
	if len(reservations) != 3 {
		t.Fatalf("expected 3 reservations, got %d", len(reservations))
	}

	expected := []string{
		"2024-03-01 10:30:00",
		"2024-02-01 09:15:00",
		"2024-01-01 08:00:00",
	}
	for i, want := range expected {
		if reservations[i].Timestamp != want {
			t.Errorf("position %d: expected %q, got %q", i, want, reservations[i].Timestamp)
		}
	}
}

func TestReservationRepository_ListEmptyForNewUser(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Fresh", "fresh@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	reservations, err := store.Reservations.ListReservationsForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListReservationsForUser failed: %v", err)
	}
	if len(reservations) != 0 {
		t.Fatalf("expected empty list, got %d rows", len(reservations))
	}
}
