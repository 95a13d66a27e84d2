package migration

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteExecutor applies migration steps against a SQLite database. The
// schema version lives in PRAGMA user_version, mirroring the integer version
// the store has always carried on-device.
type SQLiteExecutor struct {
	db *sql.DB
}

// NewSQLiteExecutor creates an executor bound to the given database handle.
func NewSQLiteExecutor(db *sql.DB) *SQLiteExecutor {
	return &SQLiteExecutor{db: db}
}

// ExecuteStep runs a single step in a transaction and records the reached
// schema version before committing. A failure rolls back both the schema
// change and the version bump.
func (e *SQLiteExecutor) ExecuteStep(ctx context.Context, step Step) (err error) {
	if step.Apply == nil {
		return NewStepError(step.Version, "apply", fmt.Errorf("step has no apply function"))
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return NewStepError(step.Version, "begin transaction", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				err = fmt.Errorf("%w (rollback error: %v)", err, rbErr)
			}
		}
	}()

	if err = step.Apply(ctx, tx); err != nil {
		err = NewStepError(step.Version, "apply", fmt.Errorf("%w: %v", ErrMigrationFailed, err))
		return err
	}

	if _, err = tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version=%d", step.Version)); err != nil {
		err = NewStepError(step.Version, "record version", err)
		return err
	}

	if err = tx.Commit(); err != nil {
		err = NewStepError(step.Version, "commit transaction", err)
		return err
	}

	return nil
}

// SchemaVersion reads the recorded schema version. A fresh database reports 0.
func (e *SQLiteExecutor) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := e.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// InitializeSchema creates the full current schema inside a transaction and
// stamps the database with CurrentVersion.
func (e *SQLiteExecutor) InitializeSchema(ctx context.Context) (err error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return NewStepError(CurrentVersion, "begin transaction", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				err = fmt.Errorf("%w (rollback error: %v)", err, rbErr)
			}
		}
	}()

	if err = CreateCurrentSchema(ctx, tx); err != nil {
		err = NewStepError(CurrentVersion, "create schema", err)
		return err
	}

	if _, err = tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version=%d", CurrentVersion)); err != nil {
		err = NewStepError(CurrentVersion, "record version", err)
		return err
	}

	if err = tx.Commit(); err != nil {
		err = NewStepError(CurrentVersion, "commit transaction", err)
		return err
	}

	return nil
}
