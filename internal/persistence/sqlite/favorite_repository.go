package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/parknow/internal/persistence"
)

// FavoriteRepository implements persistence.FavoriteRepository over the
// Favorites table. The (UserID, SpotID) pair carries a UNIQUE constraint so
// a spot can be favorited at most once per user.
type FavoriteRepository struct {
	helper *QueryHelper
	mapper *ErrorMapper
}

// NewFavoriteRepository creates a favorite repository bound to the pool.
func NewFavoriteRepository(pool *ConnectionPool) *FavoriteRepository {
	return &FavoriteRepository{
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
	}
}

// AddFavorite inserts a favorite row. A repeated pair surfaces as
// persistence.ErrDuplicate, an unknown user as ErrForeignKeyViolation.
func (r *FavoriteRepository) AddFavorite(ctx context.Context, userID int64, spotID string) error {
	if spotID == "" {
		return persistence.ErrConstraintViolation
	}

	_, err := r.helper.Exec(ctx,
		"INSERT INTO Favorites (UserID, SpotID) VALUES (?, ?)",
		userID, spotID,
	)
	if err != nil {
		return r.mapper.MapError(err)
	}
	return nil
}

// RemoveFavorite deletes the matching favorite row. A missing row is
// persistence.ErrNotFound.
func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userID int64, spotID string) error {
	result, err := r.helper.Exec(ctx,
		"DELETE FROM Favorites WHERE UserID = ? AND SpotID = ?",
		userID, spotID,
	)
	if err != nil {
		return r.mapper.MapError(err)
	}
	return requireRows(result)
}

// IsFavorite reports whether the user has favorited the spot.
func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID int64, spotID string) (bool, error) {
	var id int64
	err := r.helper.QueryRow(ctx,
		"SELECT FavoriteID FROM Favorites WHERE UserID = ? AND SpotID = ?",
		userID, spotID,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, r.mapper.MapError(err)
	}
	return true, nil
}

// ListFavoritesForUser returns the spot identifiers the user has favorited.
// No rows yields an empty slice.
func (r *FavoriteRepository) ListFavoritesForUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.helper.Query(ctx,
		"SELECT SpotID FROM Favorites WHERE UserID = ?",
		userID,
	)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	spots := make([]string, 0)
	for rows.Next() {
		var spotID string
		if err := rows.Scan(&spotID); err != nil {
			return nil, r.mapper.MapError(err)
		}
		spots = append(spots, spotID)
	}

	if err := rows.Err(); err != nil {
		return nil, r.mapper.MapError(err)
	}

	return spots, nil
}
