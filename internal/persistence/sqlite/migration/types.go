package migration

import (
	"context"
	"database/sql"
)

// Step describes a single version upgrade of the store schema. A step is
// applied when the database's recorded version is below Version, and must be
// idempotent: create-if-absent tables and guarded column additions, so that
// a partially migrated database from an interrupted run self-heals on the
// next open. Steps never drop or rewrite existing rows.
type Step struct {
	// Version is the schema version the database reaches after the step.
	Version int

	// Description is a short human-readable summary for logging.
	Description string

	// Apply executes the step's statements within the supplied transaction.
	Apply func(ctx context.Context, tx *sql.Tx) error
}

// Manager orchestrates schema initialization and upgrades.
type Manager interface {
	// Run brings the database to the current schema version, creating all
	// tables directly for a fresh database and otherwise applying each
	// pending step strictly in ascending order, once, non-interactively.
	Run(ctx context.Context) error

	// Version reports the schema version currently recorded in the database.
	Version(ctx context.Context) (int, error)

	// Pending returns the steps that would be applied by Run.
	Pending(ctx context.Context) ([]Step, error)
}

// Executor applies individual steps against the database.
type Executor interface {
	// ExecuteStep runs a single step in a transaction and records the new
	// schema version before committing.
	ExecuteStep(ctx context.Context, step Step) error

	// SchemaVersion reads the recorded schema version.
	SchemaVersion(ctx context.Context) (int, error)
}
