package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/example/parknow/internal/persistence"
)

func TestFavoriteRepository_AddAndList(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Fan", "fan@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	for _, spot := range []string{"Colombo Fort", "Galle Face Green"} {
		if err := store.Favorites.AddFavorite(ctx, user.ID, spot); err != nil {
			t.Fatalf("AddFavorite(%q) failed: %v", spot, err)
		}
	}

	favorites, err := store.Favorites.ListFavoritesForUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListFavoritesForUser failed: %v", err)
	}
	if len(favorites) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(favorites))
	}
}

func TestFavoriteRepository_DuplicatePairRejected(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Fan", "fan@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := store.Favorites.AddFavorite(ctx, user.ID, "Kandy City Center"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	err = store.Favorites.AddFavorite(ctx, user.ID, "Kandy City Center")
	if !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for repeated pair, got %v", err)
	}

	// A different user may favorite the same spot.
	other, err := store.Users.CreateUser(ctx, "Other", "other@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := store.Favorites.AddFavorite(ctx, other.ID, "Kandy City Center"); err != nil {
		t.Fatalf("expected other user's favorite to succeed: %v", err)
	}
}

func TestFavoriteRepository_IsFavorite(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Fan", "fan@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	favorited, err := store.Favorites.IsFavorite(ctx, user.ID, "Negombo Beach")
	if err != nil {
		t.Fatalf("IsFavorite failed: %v", err)
	}
	if favorited {
		t.Errorf("expected spot to start unfavorited")
	}

	if err := store.Favorites.AddFavorite(ctx, user.ID, "Negombo Beach"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	favorited, err = store.Favorites.IsFavorite(ctx, user.ID, "Negombo Beach")
	if err != nil {
		t.Fatalf("IsFavorite failed: %v", err)
	}
	if !favorited {
		t.Errorf("expected spot to be favorited after add")
	}
}

func TestFavoriteRepository_RemoveFavorite(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Fan", "fan@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := store.Favorites.AddFavorite(ctx, user.ID, "Jaffna City"); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}
	if err := store.Favorites.RemoveFavorite(ctx, user.ID, "Jaffna City"); err != nil {
		t.Fatalf("RemoveFavorite failed: %v", err)
	}

	favorited, err := store.Favorites.IsFavorite(ctx, user.ID, "Jaffna City")
	if err != nil {
		t.Fatalf("IsFavorite failed: %v", err)
	}
	if favorited {
		t.Errorf("expected spot to be unfavorited after remove")
	}

	err = store.Favorites.RemoveFavorite(ctx, user.ID, "Jaffna City")
	if !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing row, got %v", err)
	}
}
