package testfixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/parknow/internal/persistence"
	"github.com/example/parknow/internal/persistence/sqlite"
)

// SQLiteHarness provides repository access backed by a temporary SQLite store
// for integration-style persistence tests.
type SQLiteHarness struct {
	Store        *sqlite.Store
	Users        persistence.UserRepository
	Reservations persistence.ReservationRepository
	Favorites    persistence.FavoriteRepository
	Feedback     persistence.FeedbackRepository

	cleanup func()
}

// Close releases resources associated with the harness.
func (h *SQLiteHarness) Close() {
	if h != nil && h.cleanup != nil {
		h.cleanup()
		h.cleanup = nil
	}
}

// NewSQLiteHarness constructs a SQLiteHarness using a temporary file that is
// migrated automatically. Callers may optionally invoke Close, but the helper
// will also register a cleanup callback with the provided testing.TB.
func NewSQLiteHarness(tb testing.TB) *SQLiteHarness {
	tb.Helper()

	dir := tb.TempDir()
	path := filepath.Join(dir, "parknow.db")

	store, err := sqlite.Open(path, nil)
	if err != nil {
		tb.Fatalf("failed to open store: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		tb.Fatalf("failed to migrate store: %v", err)
	}

	harness := &SQLiteHarness{
		Store:        store,
		Users:        store.Users,
		Reservations: store.Reservations,
		Favorites:    store.Favorites,
		Feedback:     store.Feedback,
		cleanup: func() {
			_ = store.Close()
		},
	}

	tb.Cleanup(harness.Close)
	return harness
}
