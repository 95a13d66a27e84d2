package sqlite

import (
	"context"
	"log/slog"
	"sync"

	"github.com/example/parknow/internal/persistence/sqlite/migration"
)

// Store bundles the four entity repositories behind one explicitly opened
// connection to the on-device database file. It replaces the original
// pattern of a helper object instantiated ad hoc per screen: callers open
// the store once, run Migrate, and inject the repositories where needed.
type Store struct {
	pool *ConnectionPool

	Users        *UserRepository
	Reservations *ReservationRepository
	Favorites    *FavoriteRepository
	Feedback     *FeedbackRepository

	migrateOnce sync.Once
	migrateErr  error
	logger      *slog.Logger
}

// Open opens (or creates) the store file at the given DSN with foreign key
// enforcement enabled on the connection.
func Open(dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := NewConnectionPool(migration.DefaultConfig(dsn))
	if err != nil {
		return nil, err
	}

	return &Store{
		pool:         pool,
		Users:        NewUserRepository(pool),
		Reservations: NewReservationRepository(pool),
		Favorites:    NewFavoriteRepository(pool),
		Feedback:     NewFeedbackRepository(pool),
		logger:       logger,
	}, nil
}

// Migrate brings the schema to the current version. It runs at most once
// per Store; repeated calls return the first result.
func (s *Store) Migrate(ctx context.Context) error {
	s.migrateOnce.Do(func() {
		executor := migration.NewSQLiteExecutor(s.pool.DB())
		manager := migration.NewManager(executor, s.logger)
		s.migrateErr = manager.Run(ctx)
	})
	return s.migrateErr
}

// SchemaVersion reports the schema version recorded in the store file.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	return migration.NewSQLiteExecutor(s.pool.DB()).SchemaVersion(ctx)
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.pool.Close()
}
