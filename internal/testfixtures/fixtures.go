package testfixtures

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/example/parknow/internal/persistence"
)

var (
	userCounter     uint64
	feedbackCounter uint64
)

var referenceTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ----------------------------- User fixtures -----------------------------

// UserFixture represents a deterministic account record that can be
// materialised for application or persistence tests.
type UserFixture struct {
	Name     string
	Email    string
	Password string
}

// UserOption configures the generated user fixture.
type UserOption func(*UserFixture)

// NewUserFixture returns a deterministic user fixture with optional overrides.
func NewUserFixture(opts ...UserOption) UserFixture {
	idx := atomic.AddUint64(&userCounter, 1)
	fixture := UserFixture{
		Name:     fmt.Sprintf("Driver %03d", idx),
		Email:    fmt.Sprintf("driver-%03d@example.com", idx),
		Password: fmt.Sprintf("secret-%03d", idx),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithUserName overrides the generated display name.
func WithUserName(name string) UserOption {
	return func(f *UserFixture) {
		f.Name = name
	}
}

// WithUserEmail overrides the generated email address.
func WithUserEmail(email string) UserOption {
	return func(f *UserFixture) {
		f.Email = email
	}
}

// WithUserPassword overrides the generated password.
func WithUserPassword(password string) UserOption {
	return func(f *UserFixture) {
		f.Password = password
	}
}

// Create materialises the fixture through the supplied repository.
func (f UserFixture) Create(tb testing.TB, users persistence.UserRepository) persistence.User {
	tb.Helper()
	user, err := users.CreateUser(context.Background(), f.Name, f.Email, f.Password)
	if err != nil {
		tb.Fatalf("failed to create user fixture %s: %v", f.Email, err)
	}
	return user
}

// --------------------------- Feedback fixtures ---------------------------

// FeedbackFixture represents a deterministic feedback entry.
type FeedbackFixture struct {
	Subject string
	Message string
	Rating  float64
}

// NewFeedbackFixture returns a deterministic feedback fixture.
func NewFeedbackFixture() FeedbackFixture {
	idx := atomic.AddUint64(&feedbackCounter, 1)
	return FeedbackFixture{
		Subject: fmt.Sprintf("Subject %03d", idx),
		Message: fmt.Sprintf("Feedback message %03d", idx),
		Rating:  4.0,
	}
}

// Create materialises the fixture for the given user.
func (f FeedbackFixture) Create(tb testing.TB, repo persistence.FeedbackRepository, userID int64) persistence.Feedback {
	tb.Helper()
	entry, err := repo.CreateFeedback(context.Background(), userID, f.Subject, f.Message, f.Rating)
	if err != nil {
		tb.Fatalf("failed to create feedback fixture: %v", err)
	}
	return entry
}

// SeedReservation stores a reservation row and fails the test on error.
func SeedReservation(tb testing.TB, repo persistence.ReservationRepository, userID int64, spotID, timestamp string) persistence.Reservation {
	tb.Helper()
	reservation, err := repo.CreateReservation(context.Background(), userID, spotID, timestamp)
	if err != nil {
		tb.Fatalf("failed to seed reservation for user %d: %v", userID, err)
	}
	return reservation
}

// SeedFavorite marks a spot as favorite and fails the test on error.
func SeedFavorite(tb testing.TB, repo persistence.FavoriteRepository, userID int64, spotID string) {
	tb.Helper()
	if err := repo.AddFavorite(context.Background(), userID, spotID); err != nil {
		tb.Fatalf("failed to seed favorite %q for user %d: %v", spotID, userID, err)
	}
}
