package persistence

import "context"

// UserRepository exposes account storage operations. Identity resolution
// always starts from the email string carried between screens.
type UserRepository interface {
	CreateUser(ctx context.Context, name, email, password string) (User, error)
	AuthenticateUser(ctx context.Context, email, password string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserID(ctx context.Context, email string) (int64, error)
	RenameUser(ctx context.Context, email, newName string) error
	SetProfileImage(ctx context.Context, userID int64, imageRef string) error
	DeleteUser(ctx context.Context, userID int64) error
}

// ReservationRepository stores append-only reservation rows.
type ReservationRepository interface {
	CreateReservation(ctx context.Context, userID int64, spotID, timestamp string) (Reservation, error)
	ListReservationsForUser(ctx context.Context, userID int64) ([]Reservation, error)
	ListAllReservations(ctx context.Context) ([]Reservation, error)
}

// FavoriteRepository stores the per-user favorite spot toggles.
type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userID int64, spotID string) error
	RemoveFavorite(ctx context.Context, userID int64, spotID string) error
	IsFavorite(ctx context.Context, userID int64, spotID string) (bool, error)
	ListFavoritesForUser(ctx context.Context, userID int64) ([]string, error)
}

// FeedbackRepository stores append-only feedback rows.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, userID int64, subject, message string, rating float64) (Feedback, error)
	ListFeedbackForUser(ctx context.Context, userID int64) ([]Feedback, error)
	ListAllFeedback(ctx context.Context) ([]Feedback, error)
}
