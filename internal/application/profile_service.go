package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/parknow/internal/persistence"
)

// ProfileStore captures the user storage operations the profile flows need.
type ProfileStore interface {
	GetUserByEmail(ctx context.Context, email string) (persistence.User, error)
	GetUserID(ctx context.Context, email string) (int64, error)
	RenameUser(ctx context.Context, email, newName string) error
	SetProfileImage(ctx context.Context, userID int64, imageRef string) error
}

// ProfileService backs the profile and settings screens: viewing the
// account, renaming it, and updating the profile image reference.
type ProfileService struct {
	users  ProfileStore
	logger *slog.Logger
}

// NewProfileService wires dependencies for the profile service.
func NewProfileService(users ProfileStore, logger *slog.Logger) *ProfileService {
	return &ProfileService{users: users, logger: defaultLogger(logger)}
}

func (s *ProfileService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ProfileService", operation, attrs...)
}

// GetProfile loads the profile for the identity's email.
func (s *ProfileService) GetProfile(ctx context.Context, identity Identity) (Profile, error) {
	if s == nil || s.users == nil {
		return Profile{}, fmt.Errorf("profile service not configured")
	}
	if !identity.Valid() {
		return Profile{}, ErrMissingIdentity
	}

	user, err := s.users.GetUserByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}

	profile := Profile{UserID: user.ID, Name: user.Name, Email: user.Email}
	if user.ProfileImage != nil {
		profile.ProfileImage = *user.ProfileImage
	}
	return profile, nil
}

// Rename updates the display name for the identity's account.
func (s *ProfileService) Rename(ctx context.Context, identity Identity, newName string) (err error) {
	if s == nil || s.users == nil {
		return fmt.Errorf("profile service not configured")
	}
	if !identity.Valid() {
		return ErrMissingIdentity
	}

	logger := s.loggerWith(ctx, "Rename", "user_id", identity.UserID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "rename failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "user renamed")
	}()

	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		vErr := &ValidationError{}
		vErr.add("name", "name is required")
		err = vErr
		return
	}

	if err = s.users.RenameUser(ctx, identity.Email, trimmed); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
	}
	return
}

// SetProfileImage stores a new profile image reference. The numeric id is
// re-resolved from the email before the write, preserving the original
// identity-resolution step.
func (s *ProfileService) SetProfileImage(ctx context.Context, identity Identity, imageRef string) (err error) {
	if s == nil || s.users == nil {
		return fmt.Errorf("profile service not configured")
	}
	if !identity.Valid() {
		return ErrMissingIdentity
	}

	logger := s.loggerWith(ctx, "SetProfileImage", "user_id", identity.UserID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "profile image update failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "profile image updated")
	}()

	if strings.TrimSpace(imageRef) == "" {
		vErr := &ValidationError{}
		vErr.add("image", "image reference is required")
		err = vErr
		return
	}

	userID, err := s.users.GetUserID(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
		return
	}

	if err = s.users.SetProfileImage(ctx, userID, imageRef); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			err = ErrNotFound
		}
	}
	return
}
