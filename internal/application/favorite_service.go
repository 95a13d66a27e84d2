package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/parknow/internal/persistence"
)

// FavoriteStore captures the favorite storage operations the flow needs.
type FavoriteStore interface {
	AddFavorite(ctx context.Context, userID int64, spotID string) error
	RemoveFavorite(ctx context.Context, userID int64, spotID string) error
	IsFavorite(ctx context.Context, userID int64, spotID string) (bool, error)
	ListFavoritesForUser(ctx context.Context, userID int64) ([]string, error)
}

// FavoriteService backs the per-spot favorite star and the favorites list
// screen.
type FavoriteService struct {
	favorites FavoriteStore
	logger    *slog.Logger
}

// NewFavoriteService wires dependencies for the favorite service.
func NewFavoriteService(favorites FavoriteStore, logger *slog.Logger) *FavoriteService {
	return &FavoriteService{favorites: favorites, logger: defaultLogger(logger)}
}

func (s *FavoriteService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "FavoriteService", operation, attrs...)
}

// Add favorites a spot for the identity. A repeated pair is ErrAlreadyExists.
func (s *FavoriteService) Add(ctx context.Context, identity Identity, spotName string) (err error) {
	if err = s.check(identity, spotName); err != nil {
		return
	}

	logger := s.loggerWith(ctx, "Add", "user_id", identity.UserID, "spot_name", spotName)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "add favorite failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "favorite added")
	}()

	if err = s.favorites.AddFavorite(ctx, identity.UserID, spotName); err != nil {
		if errors.Is(err, persistence.ErrDuplicate) {
			err = ErrAlreadyExists
		}
	}
	return
}

// Remove unfavorites a spot for the identity. A missing row is ErrNotFound.
func (s *FavoriteService) Remove(ctx context.Context, identity Identity, spotName string) (err error) {
	if err = s.check(identity, spotName); err != nil {
		return
	}

	logger := s.loggerWith(ctx, "Remove", "user_id", identity.UserID, "spot_name", spotName)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "remove favorite failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "favorite removed")
	}()

	if err = s.favorites.RemoveFavorite(ctx, identity.UserID, spotName); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
	}
	return
}

// Toggle flips the favorite state of a spot and reports the new state.
func (s *FavoriteService) Toggle(ctx context.Context, identity Identity, spotName string) (favorited bool, err error) {
	if err = s.check(identity, spotName); err != nil {
		return
	}

	current, err := s.favorites.IsFavorite(ctx, identity.UserID, spotName)
	if err != nil {
		return
	}

	if current {
		err = s.Remove(ctx, identity, spotName)
		return false, err
	}
	err = s.Add(ctx, identity, spotName)
	return err == nil, err
}

// IsFavorite reports whether the identity has favorited the spot.
func (s *FavoriteService) IsFavorite(ctx context.Context, identity Identity, spotName string) (bool, error) {
	if err := s.check(identity, spotName); err != nil {
		return false, err
	}
	return s.favorites.IsFavorite(ctx, identity.UserID, spotName)
}

// List returns the spot names the identity has favorited.
func (s *FavoriteService) List(ctx context.Context, identity Identity) ([]string, error) {
	if s == nil || s.favorites == nil {
		return nil, fmt.Errorf("favorite service not configured")
	}
	if !identity.Valid() {
		return nil, ErrMissingIdentity
	}
	return s.favorites.ListFavoritesForUser(ctx, identity.UserID)
}

func (s *FavoriteService) check(identity Identity, spotName string) error {
	if s == nil || s.favorites == nil {
		return fmt.Errorf("favorite service not configured")
	}
	if !identity.Valid() {
		return ErrMissingIdentity
	}
	if strings.TrimSpace(spotName) == "" {
		vErr := &ValidationError{}
		vErr.add("spot_name", "spot name is required")
		return vErr
	}
	return nil
}
