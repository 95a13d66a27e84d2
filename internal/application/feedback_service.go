package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/parknow/internal/persistence"
)

// FeedbackStore captures the feedback storage operations the flow needs.
type FeedbackStore interface {
	CreateFeedback(ctx context.Context, userID int64, subject, message string, rating float64) (persistence.Feedback, error)
	ListFeedbackForUser(ctx context.Context, userID int64) ([]persistence.Feedback, error)
}

// FeedbackService backs the feedback screen. The rating range is enforced
// here; the store stays permissive.
type FeedbackService struct {
	feedback FeedbackStore
	logger   *slog.Logger
}

// NewFeedbackService wires dependencies for the feedback service.
func NewFeedbackService(feedback FeedbackStore, logger *slog.Logger) *FeedbackService {
	return &FeedbackService{feedback: feedback, logger: defaultLogger(logger)}
}

func (s *FeedbackService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "FeedbackService", operation, attrs...)
}

// Submit validates and stores a feedback entry for the identity.
func (s *FeedbackService) Submit(ctx context.Context, identity Identity, input FeedbackInput) (entry persistence.Feedback, err error) {
	if s == nil || s.feedback == nil {
		err = fmt.Errorf("feedback service not configured")
		return
	}
	if !identity.Valid() {
		err = ErrMissingIdentity
		return
	}

	logger := s.loggerWith(ctx, "Submit", "user_id", identity.UserID, "rating", input.Rating)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "feedback submission failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "feedback recorded", "feedback_id", entry.ID)
	}()

	vErr := &ValidationError{}
	if strings.TrimSpace(input.Subject) == "" {
		vErr.add("subject", "subject is required")
	}
	if strings.TrimSpace(input.Message) == "" {
		vErr.add("message", "message is required")
	}
	if input.Rating < 1.0 || input.Rating > 5.0 {
		vErr.add("rating", "rating must be between 1 and 5")
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	entry, err = s.feedback.CreateFeedback(ctx, identity.UserID,
		strings.TrimSpace(input.Subject), strings.TrimSpace(input.Message), input.Rating)
	return
}

// History returns the identity's previous feedback entries, newest first.
func (s *FeedbackService) History(ctx context.Context, identity Identity) ([]persistence.Feedback, error) {
	if s == nil || s.feedback == nil {
		return nil, fmt.Errorf("feedback service not configured")
	}
	if !identity.Valid() {
		return nil, ErrMissingIdentity
	}
	return s.feedback.ListFeedbackForUser(ctx, identity.UserID)
}
