package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/parknow/internal/application"
	"github.com/example/parknow/internal/persistence"
)

type feedbackService interface {
	Submit(ctx context.Context, identity application.Identity, input application.FeedbackInput) (persistence.Feedback, error)
	History(ctx context.Context, identity application.Identity) ([]persistence.Feedback, error)
}

type FeedbackHandler struct {
	service   feedbackService
	responder responder
	logger    *slog.Logger
}

func NewFeedbackHandler(service feedbackService, logger *slog.Logger) *FeedbackHandler {
	base := defaultLogger(logger)
	return &FeedbackHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *FeedbackHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "FeedbackHandler", operation, attrs...)
}

// Submit records a feedback entry for the authenticated user.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Submit", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode feedback request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Submit", "user_id", identity.UserID)

	entry, err := h.service.Submit(r.Context(), identity, application.FeedbackInput{
		Subject: req.Subject,
		Message: req.Message,
		Rating:  req.Rating,
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to record feedback", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("feedback_id", entry.ID).InfoContext(r.Context(), "feedback recorded")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toFeedbackDTO(entry))
}

// History returns the authenticated user's feedback entries, newest first.
func (h *FeedbackHandler) History(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	entries, err := h.service.History(r.Context(), identity)
	if err != nil {
		h.log(r.Context(), "History", "user_id", identity.UserID).ErrorContext(r.Context(), "failed to list feedback", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]feedbackDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, toFeedbackDTO(entry))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

type feedbackRequest struct {
	Subject string  `json:"subject"`
	Message string  `json:"message"`
	Rating  float64 `json:"rating"`
}

type feedbackDTO struct {
	ID        int64   `json:"id"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	Rating    float64 `json:"rating"`
	Timestamp string  `json:"timestamp"`
}

func toFeedbackDTO(entry persistence.Feedback) feedbackDTO {
	return feedbackDTO{
		ID:        entry.ID,
		Subject:   entry.Subject,
		Message:   entry.Message,
		Rating:    entry.Rating,
		Timestamp: entry.Timestamp,
	}
}
