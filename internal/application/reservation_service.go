package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/parknow/internal/catalog"
	"github.com/example/parknow/internal/persistence"
)

// ReservationStore captures the reservation storage operations the flow needs.
type ReservationStore interface {
	CreateReservation(ctx context.Context, userID int64, spotID, timestamp string) (persistence.Reservation, error)
	ListReservationsForUser(ctx context.Context, userID int64) ([]persistence.Reservation, error)
}

// ReservationService backs the reserve-spot and my-reservations screens:
// quoting a price, charging the simulated payment, writing the reservation
// row, and listing past reservations.
//
// The payment step and the reservation write are two independent actions
// with no transactional link between them; a crash after the simulated
// charge loses the reservation.
type ReservationService struct {
	reservations ReservationStore
	spots        *catalog.Catalog
	payments     *PaymentProcessor
	now          func() time.Time
	logger       *slog.Logger
}

// NewReservationService wires dependencies for the reservation service.
func NewReservationService(reservations ReservationStore, spots *catalog.Catalog, payments *PaymentProcessor, now func() time.Time, logger *slog.Logger) *ReservationService {
	if now == nil {
		now = time.Now
	}
	if spots == nil {
		spots = catalog.Default()
	}
	if payments == nil {
		payments = NewPaymentProcessor(now)
	}
	return &ReservationService{
		reservations: reservations,
		spots:        spots,
		payments:     payments,
		now:          now,
		logger:       defaultLogger(logger),
	}
}

func (s *ReservationService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ReservationService", operation, attrs...)
}

// Quote computes the total cost for parking at a spot for a whole number of
// hours, the figure the payment screen displays before charging.
func (s *ReservationService) Quote(spotName string, durationHours int) (ReservationQuote, error) {
	vErr := &ValidationError{}
	if strings.TrimSpace(spotName) == "" {
		vErr.add("spot_name", "spot name is required")
	}
	if durationHours < 1 {
		vErr.add("duration_hours", "duration must be at least one hour")
	}
	if vErr.HasErrors() {
		return ReservationQuote{}, vErr
	}

	spot, ok := s.spots.ByName(spotName)
	if !ok {
		return ReservationQuote{}, ErrNotFound
	}

	return ReservationQuote{
		SpotName:      spot.Name,
		DurationHours: durationHours,
		PricePerHour:  spot.PricePerHour,
		TotalCost:     spot.TotalCost(durationHours),
	}, nil
}

// Reserve runs the full reserve-and-pay flow for the identity: validate the
// parameters, charge the simulated payment, then write the reservation. The
// row is persisted only after the charge reports success.
func (s *ReservationService) Reserve(ctx context.Context, identity Identity, input ReservationInput) (view ReservationView, err error) {
	if s == nil || s.reservations == nil {
		err = fmt.Errorf("reservation service not configured")
		return
	}
	if !identity.Valid() {
		err = ErrMissingIdentity
		return
	}

	logger := s.loggerWith(ctx, "Reserve",
		"user_id", identity.UserID,
		"spot_name", input.SpotName,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "reservation failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "reservation recorded", "reservation_id", view.ID)
	}()

	quote, err := s.Quote(input.SpotName, input.DurationHours)
	if err != nil {
		return
	}

	if err = s.payments.Charge(input.Card, quote.TotalCost); err != nil {
		return
	}

	timestamp := strings.TrimSpace(input.Timestamp)
	if timestamp == "" {
		timestamp = s.now().Format("2006-01-02 15:04:05")
	}

	reservation, err := s.reservations.CreateReservation(ctx, identity.UserID, quote.SpotName, timestamp)
	if err != nil {
		return
	}

	view = ReservationView{
		ID:        reservation.ID,
		SpotName:  reservation.SpotID,
		Timestamp: reservation.Timestamp,
	}
	return
}

// List returns the identity's reservations, newest first.
func (s *ReservationService) List(ctx context.Context, identity Identity) ([]ReservationView, error) {
	if s == nil || s.reservations == nil {
		return nil, fmt.Errorf("reservation service not configured")
	}
	if !identity.Valid() {
		return nil, ErrMissingIdentity
	}

	reservations, err := s.reservations.ListReservationsForUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	views := make([]ReservationView, 0, len(reservations))
	for _, reservation := range reservations {
		views = append(views, ReservationView{
			ID:        reservation.ID,
			SpotName:  reservation.SpotID,
			Timestamp: reservation.Timestamp,
		})
	}
	return views, nil
}
