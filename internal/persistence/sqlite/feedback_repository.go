package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/example/parknow/internal/persistence"
)

// FeedbackRepository implements persistence.FeedbackRepository over the
// Feedback table. Rows are append-only and the timestamp is assigned by the
// store, not the caller.
type FeedbackRepository struct {
	helper *QueryHelper
	mapper *ErrorMapper
	now    func() time.Time
}

// NewFeedbackRepository creates a feedback repository bound to the pool.
func NewFeedbackRepository(pool *ConnectionPool) *FeedbackRepository {
	return &FeedbackRepository{
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
		now:    time.Now,
	}
}

// CreateFeedback inserts a feedback row stamped with the current time. The
// rating is stored as given; range enforcement belongs to the caller.
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, userID int64, subject, message string, rating float64) (persistence.Feedback, error) {
	timestamp := r.now().UTC().Format("2006-01-02 15:04:05")

	result, err := r.helper.Exec(ctx,
		"INSERT INTO Feedback (UserID, Subject, Message, Rating, TimeStamp) VALUES (?, ?, ?, ?, ?)",
		userID, subject, message, rating, timestamp,
	)
	if err != nil {
		return persistence.Feedback{}, r.mapper.MapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.Feedback{}, fmt.Errorf("failed to read inserted feedback id: %w", err)
	}

	return persistence.Feedback{
		ID:        id,
		UserID:    userID,
		Subject:   subject,
		Message:   message,
		Rating:    rating,
		Timestamp: timestamp,
	}, nil
}

// ListFeedbackForUser returns the user's feedback rows, newest first.
func (r *FeedbackRepository) ListFeedbackForUser(ctx context.Context, userID int64) ([]persistence.Feedback, error) {
	return r.list(ctx,
		"SELECT FeedbackID, UserID, Subject, Message, Rating, TimeStamp FROM Feedback WHERE UserID = ? ORDER BY TimeStamp DESC",
		userID,
	)
}

// ListAllFeedback returns every feedback row in insertion order.
func (r *FeedbackRepository) ListAllFeedback(ctx context.Context) ([]persistence.Feedback, error) {
	return r.list(ctx, "SELECT FeedbackID, UserID, Subject, Message, Rating, TimeStamp FROM Feedback")
}

func (r *FeedbackRepository) list(ctx context.Context, query string, args ...any) ([]persistence.Feedback, error) {
	rows, err := r.helper.Query(ctx, query, args...)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	entries := make([]persistence.Feedback, 0)
	for rows.Next() {
		var entry persistence.Feedback
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Subject, &entry.Message, &entry.Rating, &entry.Timestamp); err != nil {
			return nil, r.mapper.MapError(err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, r.mapper.MapError(err)
	}

	return entries, nil
}
