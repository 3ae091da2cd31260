package repository

import (
	"context"
	"database/sql"

	"github.com/avolair/flight-roster/internal/model"
)

// PassengerRepo provides access to passengers on a flight. Seat
// numbers are the only field the roster flow writes, and only inside
// the generation transaction.
type PassengerRepo struct {
	db *sql.DB
}

// NewPassengerRepo constructs a PassengerRepo with the given DB handle.
func NewPassengerRepo(db *sql.DB) *PassengerRepo { return &PassengerRepo{db: db} }

// ListByFlight returns all passengers booked on a flight ordered by
// id. The order is the allocator's assignment order.
func (r *PassengerRepo) ListByFlight(ctx context.Context, flightID uint64) ([]model.Passenger, error) {
	const q = `SELECT id, flight_id, name, seat_number, created_at, updated_at
	           FROM passengers WHERE flight_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	passengers := make([]model.Passenger, 0)
	for rows.Next() {
		var p model.Passenger
		var seat sql.NullString
		if err := rows.Scan(&p.ID, &p.FlightID, &p.Name, &seat, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if seat.Valid {
			s := seat.String
			p.SeatNumber = &s
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

// UpdateSeatTx writes a passenger's seat number within an existing
// transaction. The caller commits or rolls back together with the
// rest of the roster writes.
func (r *PassengerRepo) UpdateSeatTx(ctx context.Context, tx *sql.Tx, passengerID uint64, seat string) error {
	const q = `UPDATE passengers SET seat_number = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, seat, passengerID)
	return err
}
