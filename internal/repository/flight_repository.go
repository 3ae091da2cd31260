package repository

import (
	"context"
	"database/sql"

	"github.com/avolair/flight-roster/internal/model"
)

// FlightRepo provides read access to scheduled flights. Flight CRUD is
// owned by an external scheduling system.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo with the given DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo { return &FlightRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// that span multiple repositories.
func (r *FlightRepo) DB() *sql.DB { return r.db }

// GetByID returns a single flight. Returns ErrFlightNotFound when no
// row exists.
func (r *FlightRepo) GetByID(ctx context.Context, id uint64) (*model.Flight, error) {
	const q = `SELECT id, flight_number, origin_code, destination_code, departs_at, arrives_at, aircraft_id, created_at, updated_at
	           FROM flights WHERE id = ?`
	var f model.Flight
	var aircraftID sql.NullInt64
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&f.ID, &f.FlightNumber, &f.OriginCode, &f.DestinationCode,
		&f.DepartsAt, &f.ArrivesAt, &aircraftID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	if aircraftID.Valid {
		id := uint64(aircraftID.Int64)
		f.AircraftID = &id
	}
	return &f, nil
}

// List returns all flights ordered by departure time ascending.
func (r *FlightRepo) List(ctx context.Context) ([]model.Flight, error) {
	const q = `SELECT id, flight_number, origin_code, destination_code, departs_at, arrives_at, aircraft_id, created_at, updated_at
	           FROM flights ORDER BY departs_at`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	flights := make([]model.Flight, 0)
	for rows.Next() {
		var f model.Flight
		var aircraftID sql.NullInt64
		if err := rows.Scan(
			&f.ID, &f.FlightNumber, &f.OriginCode, &f.DestinationCode,
			&f.DepartsAt, &f.ArrivesAt, &aircraftID, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if aircraftID.Valid {
			id := uint64(aircraftID.Int64)
			f.AircraftID = &id
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}
