package migration

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteConfig holds SQLite-specific database configuration.
type SQLiteConfig struct {
	// DSN is the database file path or connection string.
	DSN string

	// BusyTimeout sets how long to wait for database locks.
	BusyTimeout time.Duration

	// EnableForeignKeys enables foreign key constraint checking. The
	// ParkNow schema relies on ON DELETE CASCADE, so every connection
	// opened for the store must have this set.
	EnableForeignKeys bool

	// JournalMode sets the SQLite journal mode (WAL, DELETE, TRUNCATE, ...).
	JournalMode string

	// MaxOpenConns sets the maximum number of open connections. The store
	// backs a single on-device database file, so this defaults to 1.
	MaxOpenConns int
}

// DefaultConfig returns the configuration used for per-device store files.
func DefaultConfig(dsn string) SQLiteConfig {
	return SQLiteConfig{
		DSN:               dsn,
		BusyTimeout:       5 * time.Second,
		EnableForeignKeys: true,
		JournalMode:       "WAL",
		MaxOpenConns:      1,
	}
}

// ConnectionManager opens SQLite connections with the configured pragmas
// applied, so that foreign key enforcement and journaling are consistent
// across every handle backed by the same file.
type ConnectionManager struct {
	config SQLiteConfig
}

// NewConnectionManager creates a connection manager for the given config.
func NewConnectionManager(config SQLiteConfig) *ConnectionManager {
	return &ConnectionManager{config: config}
}

// GetConnection returns a configured database handle.
func (m *ConnectionManager) GetConnection() (*sql.DB, error) {
	if err := m.ValidateConfig(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", m.config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", m.config.DSN, err)
	}

	if err := m.ConfigureDatabase(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// ConfigureDatabase applies the configured pragmas to an open handle.
func (m *ConnectionManager) ConfigureDatabase(db *sql.DB) error {
	if m.config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(m.config.MaxOpenConns)
	}

	if m.config.EnableForeignKeys {
		if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if mode := strings.TrimSpace(m.config.JournalMode); mode != "" {
		if _, err := db.Exec("PRAGMA journal_mode=" + mode); err != nil {
			return fmt.Errorf("failed to set journal mode %s: %w", mode, err)
		}
	}

	if m.config.BusyTimeout > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d", m.config.BusyTimeout.Milliseconds())); err != nil {
			return fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	return nil
}

// ValidateConfig validates the SQLite configuration.
func (m *ConnectionManager) ValidateConfig() error {
	if strings.TrimSpace(m.config.DSN) == "" {
		return fmt.Errorf("sqlite DSN must not be empty")
	}
	return nil
}
