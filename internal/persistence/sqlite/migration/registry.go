package migration

import (
	"context"
	"database/sql"
	"fmt"
)

// CurrentVersion is the schema version written by a fresh installation.
const CurrentVersion = 4

const (
	createUsersTableV3 = `
		CREATE TABLE IF NOT EXISTS Users (
			UserID INTEGER PRIMARY KEY AUTOINCREMENT,
			Name TEXT,
			Email TEXT UNIQUE,
			Password TEXT
		)`

	createUsersTable = `
		CREATE TABLE IF NOT EXISTS Users (
			UserID INTEGER PRIMARY KEY AUTOINCREMENT,
			Name TEXT,
			Email TEXT UNIQUE,
			Password TEXT,
			ProfileImage TEXT
		)`

	createReservationsTable = `
		CREATE TABLE IF NOT EXISTS Reservations (
			ReservationID INTEGER PRIMARY KEY AUTOINCREMENT,
			UserID INTEGER,
			SpotID TEXT,
			TimeStamp TEXT,
			FOREIGN KEY(UserID) REFERENCES Users(UserID) ON DELETE CASCADE
		)`

	createFavoritesTable = `
		CREATE TABLE IF NOT EXISTS Favorites (
			FavoriteID INTEGER PRIMARY KEY AUTOINCREMENT,
			UserID INTEGER,
			SpotID TEXT,
			UNIQUE(UserID, SpotID),
			FOREIGN KEY(UserID) REFERENCES Users(UserID) ON DELETE CASCADE
		)`

	createFeedbackTable = `
		CREATE TABLE IF NOT EXISTS Feedback (
			FeedbackID INTEGER PRIMARY KEY AUTOINCREMENT,
			UserID INTEGER,
			Subject TEXT,
			Message TEXT,
			Rating REAL,
			TimeStamp TEXT,
			FOREIGN KEY(UserID) REFERENCES Users(UserID) ON DELETE CASCADE
		)`
)

// Steps returns the registered version upgrades in ascending order.
func Steps() []Step {
	return []Step{
		{
			Version:     2,
			Description: "no structural change (historical)",
			Apply: func(ctx context.Context, tx *sql.Tx) error {
				return nil
			},
		},
		{
			Version:     3,
			Description: "add Favorites and Feedback tables",
			Apply: func(ctx context.Context, tx *sql.Tx) error {
				if _, err := tx.ExecContext(ctx, createFavoritesTable); err != nil {
					return err
				}
				_, err := tx.ExecContext(ctx, createFeedbackTable)
				return err
			},
		},
		{
			Version:     4,
			Description: "add ProfileImage column to Users",
			Apply: func(ctx context.Context, tx *sql.Tx) error {
				exists, err := columnExists(ctx, tx, "Users", "ProfileImage")
				if err != nil {
					return err
				}
				if exists {
					return nil
				}
				_, err = tx.ExecContext(ctx, "ALTER TABLE Users ADD COLUMN ProfileImage TEXT")
				return err
			},
		},
	}
}

// CreateCurrentSchema creates all four tables at the current version. Used
// when opening a fresh database; the end state is equivalent to applying
// every step in order.
func CreateCurrentSchema(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range []string{
		createUsersTable,
		createReservationsTable,
		createFavoritesTable,
		createFeedbackTable,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// CreateSchemaAtVersion creates the schema as it existed at an older
// version. Exposed for upgrade tests that need to seed historical layouts.
func CreateSchemaAtVersion(ctx context.Context, tx *sql.Tx, version int) error {
	if version < 1 || version > CurrentVersion {
		return fmt.Errorf("unsupported schema version %d", version)
	}

	users := createUsersTable
	if version < 4 {
		users = createUsersTableV3
	}
	statements := []string{users, createReservationsTable}
	if version >= 3 {
		statements = append(statements, createFavoritesTable, createFeedbackTable)
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// columnExists reports whether the named table already carries the column.
// Guarded ALTER TABLE steps need this because SQLite's ADD COLUMN is not
// idempotent on its own.
func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			columnType string
			notNull    int
			dfltValue  sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &columnType, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}

	return false, rows.Err()
}
