package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/parknow/internal/persistence"
)

type fakeFavoriteStore struct {
	pairs map[int64]map[string]bool
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{pairs: make(map[int64]map[string]bool)}
}

func (s *fakeFavoriteStore) AddFavorite(ctx context.Context, userID int64, spotID string) error {
	if s.pairs[userID][spotID] {
		return persistence.ErrDuplicate
	}
	if s.pairs[userID] == nil {
		s.pairs[userID] = make(map[string]bool)
	}
	s.pairs[userID][spotID] = true
	return nil
}

func (s *fakeFavoriteStore) RemoveFavorite(ctx context.Context, userID int64, spotID string) error {
	if !s.pairs[userID][spotID] {
		return persistence.ErrNotFound
	}
	delete(s.pairs[userID], spotID)
	return nil
}

func (s *fakeFavoriteStore) IsFavorite(ctx context.Context, userID int64, spotID string) (bool, error) {
	return s.pairs[userID][spotID], nil
}

func (s *fakeFavoriteStore) ListFavoritesForUser(ctx context.Context, userID int64) ([]string, error) {
	out := make([]string, 0, len(s.pairs[userID]))
	for spotID := range s.pairs[userID] {
		out = append(out, spotID)
	}
	return out, nil
}

func TestFavoriteService_AddAndList(t *testing.T) {
	service := NewFavoriteService(newFakeFavoriteStore(), nil)
	ctx := context.Background()
	identity := testIdentity()

	if err := service.Add(ctx, identity, "Colombo Fort Parking"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	spots, err := service.List(ctx, identity)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(spots) != 1 || spots[0] != "Colombo Fort Parking" {
		t.Fatalf("unexpected favorites: %v", spots)
	}
}

func TestFavoriteService_AddDuplicate(t *testing.T) {
	service := NewFavoriteService(newFakeFavoriteStore(), nil)
	ctx := context.Background()
	identity := testIdentity()

	if err := service.Add(ctx, identity, "Colombo Fort Parking"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	err := service.Add(ctx, identity, "Colombo Fort Parking")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestFavoriteService_RemoveMissing(t *testing.T) {
	service := NewFavoriteService(newFakeFavoriteStore(), nil)

	err := service.Remove(context.Background(), testIdentity(), "Colombo Fort Parking")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFavoriteService_Toggle(t *testing.T) {
	service := NewFavoriteService(newFakeFavoriteStore(), nil)
	ctx := context.Background()
	identity := testIdentity()

	favorited, err := service.Toggle(ctx, identity, "Galle Fort Parking")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !favorited {
		t.Fatalf("expected first toggle to favorite")
	}

	favorited, err = service.Toggle(ctx, identity, "Galle Fort Parking")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if favorited {
		t.Fatalf("expected second toggle to unfavorite")
	}

	state, err := service.IsFavorite(ctx, identity, "Galle Fort Parking")
	if err != nil {
		t.Fatalf("IsFavorite failed: %v", err)
	}
	if state {
		t.Fatalf("expected spot to end unfavorited")
	}
}

func TestFavoriteService_Validation(t *testing.T) {
	service := NewFavoriteService(newFakeFavoriteStore(), nil)
	ctx := context.Background()

	if err := service.Add(ctx, Identity{}, "Colombo Fort Parking"); !errors.Is(err, ErrMissingIdentity) {
		t.Fatalf("expected ErrMissingIdentity, got %v", err)
	}

	err := service.Add(ctx, testIdentity(), "  ")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for blank spot, got %v", err)
	}
}
