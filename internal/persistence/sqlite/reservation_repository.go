package sqlite

import (
	"context"
	"fmt"

	"github.com/example/parknow/internal/persistence"
)

// ReservationRepository implements persistence.ReservationRepository over
// the Reservations table. Rows are append-only; no update or delete is
// exposed.
type ReservationRepository struct {
	helper *QueryHelper
	mapper *ErrorMapper
}

// NewReservationRepository creates a reservation repository bound to the pool.
func NewReservationRepository(pool *ConnectionPool) *ReservationRepository {
	return &ReservationRepository{
		helper: NewQueryHelper(pool),
		mapper: NewErrorMapper(),
	}
}

// CreateReservation inserts a reservation row. The timestamp is stored as
// supplied by the caller; the store does not interpret it.
func (r *ReservationRepository) CreateReservation(ctx context.Context, userID int64, spotID, timestamp string) (persistence.Reservation, error) {
	if spotID == "" {
		return persistence.Reservation{}, persistence.ErrConstraintViolation
	}

	result, err := r.helper.Exec(ctx,
		"INSERT INTO Reservations (UserID, SpotID, TimeStamp) VALUES (?, ?, ?)",
		userID, spotID, timestamp,
	)
	if err != nil {
		return persistence.Reservation{}, r.mapper.MapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.Reservation{}, fmt.Errorf("failed to read inserted reservation id: %w", err)
	}

	return persistence.Reservation{
		ID:        id,
		UserID:    userID,
		SpotID:    spotID,
		Timestamp: timestamp,
	}, nil
}

// ListReservationsForUser returns the user's reservations ordered by
// timestamp descending. No rows yields an empty slice.
func (r *ReservationRepository) ListReservationsForUser(ctx context.Context, userID int64) ([]persistence.Reservation, error) {
	return r.list(ctx,
		"SELECT ReservationID, UserID, SpotID, TimeStamp FROM Reservations WHERE UserID = ? ORDER BY TimeStamp DESC",
		userID,
	)
}

// ListAllReservations returns every reservation row in insertion order.
func (r *ReservationRepository) ListAllReservations(ctx context.Context) ([]persistence.Reservation, error) {
	return r.list(ctx, "SELECT ReservationID, UserID, SpotID, TimeStamp FROM Reservations")
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]persistence.Reservation, error) {
	rows, err := r.helper.Query(ctx, query, args...)
	if err != nil {
		return nil, r.mapper.MapError(err)
	}
	defer rows.Close()

	reservations := make([]persistence.Reservation, 0)
	for rows.Next() {
		var reservation persistence.Reservation
		if err := rows.Scan(&reservation.ID, &reservation.UserID, &reservation.SpotID, &reservation.Timestamp); err != nil {
			return nil, r.mapper.MapError(err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, r.mapper.MapError(err)
	}

	return reservations, nil
}
