package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/parknow/internal/application"
)

type reservationService interface {
	Quote(spotName string, durationHours int) (application.ReservationQuote, error)
	Reserve(ctx context.Context, identity application.Identity, input application.ReservationInput) (application.ReservationView, error)
	List(ctx context.Context, identity application.Identity) ([]application.ReservationView, error)
}

type ReservationHandler struct {
	service   reservationService
	responder responder
	logger    *slog.Logger
}

func NewReservationHandler(service reservationService, logger *slog.Logger) *ReservationHandler {
	base := defaultLogger(logger)
	return &ReservationHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *ReservationHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ReservationHandler", operation, attrs...)
}

// Create runs the reserve-and-pay flow for the authenticated user.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode reservation request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "user_id", identity.UserID, "spot", req.SpotName)

	view, err := h.service.Reserve(r.Context(), identity, application.ReservationInput{
		SpotName:      req.SpotName,
		Timestamp:     req.Timestamp,
		DurationHours: req.DurationHours,
		Card: application.PaymentCard{
			Number:     req.Card.Number,
			HolderName: req.Card.HolderName,
			Expiry:     req.Card.Expiry,
			CVV:        req.Card.CVV,
		},
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "reservation failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("reservation_id", view.ID).InfoContext(r.Context(), "reservation created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toReservationDTO(view))
}

// List returns the authenticated user's reservations, newest first.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		h.responder.handleServiceError(r.Context(), w, application.ErrMissingIdentity)
		return
	}

	views, err := h.service.List(r.Context(), identity)
	if err != nil {
		h.log(r.Context(), "List", "user_id", identity.UserID).ErrorContext(r.Context(), "failed to list reservations", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]reservationDTO, 0, len(views))
	for _, view := range views {
		dtos = append(dtos, toReservationDTO(view))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, dtos)
}

// Quote returns the total price for a spot and duration without reserving.
func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Quote", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode quote request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	quote, err := h.service.Quote(req.SpotName, req.DurationHours)
	if err != nil {
		h.log(r.Context(), "Quote", "spot", req.SpotName).ErrorContext(r.Context(), "failed to quote reservation", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, quoteDTO{
		SpotName:      quote.SpotName,
		DurationHours: quote.DurationHours,
		PricePerHour:  quote.PricePerHour,
		TotalCost:     quote.TotalCost,
	})
}

type cardDTO struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type reservationRequest struct {
	SpotName      string  `json:"spot_name"`
	Timestamp     string  `json:"timestamp,omitempty"`
	DurationHours int     `json:"duration_hours"`
	Card          cardDTO `json:"card"`
}

type quoteRequest struct {
	SpotName      string `json:"spot_name"`
	DurationHours int    `json:"duration_hours"`
}

type quoteDTO struct {
	SpotName      string  `json:"spot_name"`
	DurationHours int     `json:"duration_hours"`
	PricePerHour  float64 `json:"price_per_hour"`
	TotalCost     float64 `json:"total_cost"`
}

type reservationDTO struct {
	ID        int64  `json:"id"`
	SpotName  string `json:"spot_name"`
	Timestamp string `json:"timestamp"`
}

func toReservationDTO(view application.ReservationView) reservationDTO {
	return reservationDTO{
		ID:        view.ID,
		SpotName:  view.SpotName,
		Timestamp: view.Timestamp,
	}
}
