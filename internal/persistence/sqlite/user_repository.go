package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/parknow/internal/persistence"
)

// UserRepository implements persistence.UserRepository over the Users table.
type UserRepository struct {
	helper *QueryHelper
	mapper *ErrorMapper
}

// NewUserRepository creates a user repository bound to the pool.
func NewUserRepository(pool *ConnectionPool) *UserRepository {
	return &UserRepository{
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
	}
}

// CreateUser inserts a new account row into the Users table. The profile
// image reference starts out absent. A reused email surfaces as
// persistence.ErrDuplicate.
func (r *UserRepository) CreateUser(ctx context.Context, name, email, password string) (persistence.User, error) {
	normalized := normalizeEmail(email)
	if normalized == "" {
		return persistence.User{}, persistence.ErrConstraintViolation
	}

	result, err := r.helper.Exec(ctx,
		"INSERT INTO Users (Name, Email, Password, ProfileImage) VALUES (?, ?, ?, NULL)",
		name, normalized, password,
	)
	if err != nil {
		return persistence.User{}, r.mapper.MapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.User{}, fmt.Errorf("failed to read inserted user id: %w", err)
	}

	return persistence.User{
		ID:       id,
		Name:     name,
		Email:    normalized,
		Password: password,
	}, nil
}

// AuthenticateUser reports whether a row matches the email and credential
// string exactly. Absence of a match is false, never an error.
func (r *UserRepository) AuthenticateUser(ctx context.Context, email, password string) (bool, error) {
	var id int64
	err := r.helper.QueryRow(ctx,
		"SELECT UserID FROM Users WHERE Email = ? AND Password = ?",
		normalizeEmail(email), password,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, r.mapper.MapError(err)
	}
	return true, nil
}

// GetUserByEmail retrieves the full account row for an email. Absence is
// persistence.ErrNotFound, distinct from I/O failures.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (persistence.User, error) {
	var (
		user         persistence.User
		profileImage sql.NullString
	)
	err := r.helper.QueryRow(ctx,
		"SELECT UserID, Name, Email, Password, ProfileImage FROM Users WHERE Email = ?",
		normalizeEmail(email),
	).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &profileImage)
	if err != nil {
		if err == sql.ErrNoRows {
			return persistence.User{}, persistence.ErrNotFound
		}
		return persistence.User{}, r.mapper.MapError(err)
	}

	if profileImage.Valid {
		ref := profileImage.String
		user.ProfileImage = &ref
	}

	return user, nil
}

// GetUserID resolves the numeric identifier for an email. Every per-user
// operation starts here; absence yields the -1 sentinel together with
// persistence.ErrNotFound.
func (r *UserRepository) GetUserID(ctx context.Context, email string) (int64, error) {
	var id int64
	err := r.helper.QueryRow(ctx,
		"SELECT UserID FROM Users WHERE Email = ?",
		normalizeEmail(email),
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return persistence.UserIDNotFound, persistence.ErrNotFound
		}
		return persistence.UserIDNotFound, r.mapper.MapError(err)
	}
	return id, nil
}

// RenameUser updates the display name of the account identified by email.
func (r *UserRepository) RenameUser(ctx context.Context, email, newName string) error {
	result, err := r.helper.Exec(ctx,
		"UPDATE Users SET Name = ? WHERE Email = ?",
		newName, normalizeEmail(email),
	)
	if err != nil {
		return r.mapper.MapError(err)
	}
	return requireRows(result)
}

// SetProfileImage updates the profile image reference for a user id.
func (r *UserRepository) SetProfileImage(ctx context.Context, userID int64, imageRef string) error {
	result, err := r.helper.Exec(ctx,
		"UPDATE Users SET ProfileImage = ? WHERE UserID = ?",
		imageRef, userID,
	)
	if err != nil {
		return r.mapper.MapError(err)
	}
	return requireRows(result)
}

// DeleteUser removes an account. The foreign keys on Reservations,
// Favorites and Feedback cascade, so every dependent row goes with it.
func (r *UserRepository) DeleteUser(ctx context.Context, userID int64) error {
	result, err := r.helper.Exec(ctx, "DELETE FROM Users WHERE UserID = ?", userID)
	if err != nil {
		return r.mapper.MapError(err)
	}
	return requireRows(result)
}

// requireRows converts a zero-row update or delete into ErrNotFound.
func requireRows(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

// normalizeEmail normalizes email addresses for consistent storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
