package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// manager implements the Manager interface over an Executor and the
// registered step set.
type manager struct {
	executor interface {
		ExecuteStep(ctx context.Context, step Step) error
		SchemaVersion(ctx context.Context) (int, error)
		InitializeSchema(ctx context.Context) error
	}
	steps  []Step
	logger *slog.Logger
}

// NewManager creates a Manager that applies the registered steps through the
// given executor.
func NewManager(executor *SQLiteExecutor, logger *slog.Logger) Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &manager{executor: executor, steps: Steps(), logger: logger}
}

// Run brings the database to CurrentVersion. A fresh database (version 0)
// gets the full schema directly; an existing one has each pending step
// applied in ascending order. Steps are idempotent, so a database left
// half-migrated by an interrupted run converges on the next call.
func (m *manager) Run(ctx context.Context) error {
	start := time.Now()

	version, err := m.executor.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	if version == 0 {
		m.logger.InfoContext(ctx, "initializing fresh store schema", "version", CurrentVersion)
		if err := m.executor.InitializeSchema(ctx); err != nil {
			m.logger.ErrorContext(ctx, "schema initialization failed", "error", err)
			return err
		}
		m.logger.InfoContext(ctx, "store schema initialized", "duration", time.Since(start))
		return nil
	}

	if version > CurrentVersion {
		return fmt.Errorf("%w: store schema version %d is newer than supported version %d", ErrMigrationFailed, version, CurrentVersion)
	}

	pending := m.pendingFor(version)
	if len(pending) == 0 {
		m.logger.DebugContext(ctx, "store schema up to date", "version", version)
		return nil
	}

	m.logger.InfoContext(ctx, "upgrading store schema",
		"from_version", version,
		"to_version", CurrentVersion,
		"pending_steps", len(pending),
	)

	for _, step := range pending {
		stepStart := time.Now()
		if err := m.executor.ExecuteStep(ctx, step); err != nil {
			m.logger.ErrorContext(ctx, "migration step failed",
				"version", step.Version,
				"description", step.Description,
				"error", err,
			)
			return err
		}
		m.logger.InfoContext(ctx, "migration step applied",
			"version", step.Version,
			"description", step.Description,
			"duration", time.Since(stepStart),
		)
	}

	m.logger.InfoContext(ctx, "store schema upgraded", "version", CurrentVersion, "duration", time.Since(start))
	return nil
}

// Version reports the schema version currently recorded in the database.
func (m *manager) Version(ctx context.Context) (int, error) {
	return m.executor.SchemaVersion(ctx)
}

// Pending returns the steps Run would apply.
func (m *manager) Pending(ctx context.Context) ([]Step, error) {
	version, err := m.executor.SchemaVersion(ctx)
	if err != nil {
		return nil, err
	}
	if version == 0 {
		return m.steps, nil
	}
	return m.pendingFor(version), nil
}

func (m *manager) pendingFor(version int) []Step {
	var pending []Step
	for _, step := range m.steps {
		if step.Version > version {
			pending = append(pending, step)
		}
	}
	return pending
}
