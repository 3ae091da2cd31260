package model

import "time"

// Passenger is a ticketed traveller on one flight. SeatNumber is nil
// until a seat is assigned; a passenger with a seat is considered
// pre-seated and is never reassigned by the allocator.
type Passenger struct {
	ID         uint64    // passengers.id
	FlightID   uint64    // passengers.flight_id
	Name       string    // passengers.name
	SeatNumber *string   // passengers.seat_number (nullable, e.g. "12A")
	CreatedAt  time.Time // passengers.created_at
	UpdatedAt  time.Time // passengers.updated_at
}

// Seated reports whether the passenger already holds a seat.
func (p Passenger) Seated() bool {
	return p.SeatNumber != nil && *p.SeatNumber != ""
}
