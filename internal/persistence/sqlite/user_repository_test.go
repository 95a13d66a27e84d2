package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/example/parknow/internal/persistence"
)

func setupStoreTest(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "parknow.db")
	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate store: %v", err)
	}
	return store
}

func TestUserRepository_CreateUser(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	user, err := store.Users.CreateUser(ctx, "Nimal Perera", "nimal@example.com", "secret")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID <= 0 {
		t.Fatalf("expected positive user id, got %d", user.ID)
	}
	if user.ProfileImage != nil {
		t.Fatalf("expected new account without profile image, got %q", *user.ProfileImage)
	}

	retrieved, err := store.Users.GetUserByEmail(ctx, "nimal@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if retrieved.Name != "Nimal Perera" {
		t.Errorf("expected name to round-trip, got %q", retrieved.Name)
	}
	if retrieved.ID != user.ID {
		t.Errorf("expected id %d, got %d", user.ID, retrieved.ID)
	}
}

func TestUserRepository_CreateUserDuplicateEmail(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	if _, err := store.Users.CreateUser(ctx, "First", "taken@example.com", "pw1"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := store.Users.CreateUser(ctx, "Second", "taken@example.com", "pw2")
	if !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for reused email, got %v", err)
	}

	// Email comparison is case insensitive through normalization.
	_, err = store.Users.CreateUser(ctx, "Third", "TAKEN@example.com", "pw3")
	if !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for case variant email, got %v", err)
	}
}

func TestUserRepository_GetUserID(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	created, err := store.Users.CreateUser(ctx, "Kamala", "kamala@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	id, err := store.Users.GetUserID(ctx, "kamala@example.com")
	if err != nil {
		t.Fatalf("GetUserID failed: %v", err)
	}
	if id != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, id)
	}

	id, err = store.Users.GetUserID(ctx, "missing@example.com")
	if !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
	if id != persistence.UserIDNotFound {
		t.Errorf("expected sentinel id %d, got %d", persistence.UserIDNotFound, id)
	}
}

func TestUserRepository_AuthenticateUser(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	if _, err := store.Users.CreateUser(ctx, "Auth", "auth@example.com", "correct"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	ok, err := store.Users.AuthenticateUser(ctx, "auth@example.com", "correct")
	if err != nil {
		t.Fatalf("AuthenticateUser failed: %v", err)
	}
	if !ok {
		t.Errorf("expected matching credentials to authenticate")
	}

	ok, err = store.Users.AuthenticateUser(ctx, "auth@example.com", "wrong")
	if err != nil {
		t.Fatalf("AuthenticateUser failed: %v", err)
	}
	if ok {
		t.Errorf("expected mismatched password to be rejected")
	}

	ok, err = store.Users.AuthenticateUser(ctx, "unknown@example.com", "correct")
	if err != nil {
		t.Fatalf("AuthenticateUser failed: %v", err)
	}
	if ok {
		t.Errorf("expected unknown email to be rejected")
	}
}

func TestUserRepository_RenameUser(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	if _, err := store.Users.CreateUser(ctx, "Old Name", "rename@example.com", "pw"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := store.Users.RenameUser(ctx, "rename@example.com", "New Name"); err != nil {
		t.Fatalf("RenameUser failed: %v", err)
	}

	user, err := store.Users.GetUserByEmail(ctx, "rename@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if user.Name != "New Name" {
		t.Errorf("expected renamed account, got %q", user.Name)
	}

	err = store.Users.RenameUser(ctx, "missing@example.com", "Whoever")
	if !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}
}

func TestUserRepository_SetProfileImage(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	created, err := store.Users.CreateUser(ctx, "Pic", "pic@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := store.Users.SetProfileImage(ctx, created.ID, "images/pic.png"); err != nil {
		t.Fatalf("SetProfileImage failed: %v", err)
	}

	user, err := store.Users.GetUserByEmail(ctx, "pic@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if user.ProfileImage == nil || *user.ProfileImage != "images/pic.png" {
		t.Errorf("expected stored image reference, got %v", user.ProfileImage)
	}

	err = store.Users.SetProfileImage(ctx, created.ID+100, "images/other.png")
	if !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user id, got %v", err)
	}
}

func TestUserRepository_DeleteUserCascades(t *testing.T) {
	store := setupStoreTest(t)
	ctx := context.Background()

	owner, err := store.Users.CreateUser(ctx, "Owner", "owner@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	other, err := store.Users.CreateUser(ctx, "Other", "other@example.com", "pw")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	for _, userID := range []int64{owner.ID, other.ID} {
		if _, err := store.Reservations.CreateReservation(ctx, userID, "Colombo Fort", "2024-01-02 15:04:05"); err != nil {
			t.Fatalf("CreateReservation failed: %v", err)
		}
		if err := store.Favorites.AddFavorite(ctx, userID, "Galle Face Green"); err != nil {
			t.Fatalf("AddFavorite failed: %v", err)
		}
		if _, err := store.Feedback.CreateFeedback(ctx, userID, "Subject", "Message", 4.0); err != nil {
			t.Fatalf("CreateFeedback failed: %v", err)
		}
	}

	if err := store.Users.DeleteUser(ctx, owner.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if _, err := store.Users.GetUserByEmail(ctx, "owner@example.com"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected deleted account to be gone, got %v", err)
	}

	reservations, err := store.Reservations.ListReservationsForUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListReservationsForUser failed: %v", err)
	}
	if len(reservations) != 0 {
		t.Errorf("expected cascaded reservation delete, got %d rows", len(reservations))
	}

	favorites, err := store.Favorites.ListFavoritesForUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListFavoritesForUser failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("expected cascaded favorite delete, got %d rows", len(favorites))
	}

	// The other account's rows are untouched.
	otherReservations, err := store.Reservations.ListReservationsForUser(ctx, other.ID)
	if err != nil {
		t.Fatalf("ListReservationsForUser failed: %v", err)
	}
	if len(otherReservations) != 1 {
		t.Errorf("expected other account's reservation to survive, got %d rows", len(otherReservations))
	}
	otherFeedback, err := store.Feedback.ListFeedbackForUser(ctx, other.ID)
	if err != nil {
		t.Fatalf("ListFeedbackForUser failed: %v", err)
	}
	if len(otherFeedback) != 1 {
		t.Errorf("expected other account's feedback to survive, got %d rows", len(otherFeedback))
	}
}
