package model

import "time"

// Flight represents a scheduled flight between two airports. The
// aircraft reference is nullable: a flight without an assigned aircraft
// profile cannot have a roster generated for it.
//
// Fields:
//  ID              – primary key identifier.
//  FlightNumber    – airline designator plus number (e.g. "AV2184").
//  OriginCode      – IATA code of the departure airport.
//  DestinationCode – IATA code of the arrival airport.
//  DepartsAt       – scheduled departure time (UTC).
//  ArrivesAt       – scheduled arrival time (UTC).
//  AircraftID      – aircraft profile flown (nil if not yet assigned).
type Flight struct {
	ID              uint64    // flights.id
	FlightNumber    string    // flights.flight_number
	OriginCode      string    // flights.origin_code
	DestinationCode string    // flights.destination_code
	DepartsAt       time.Time // flights.departs_at
	ArrivesAt       time.Time // flights.arrives_at
	AircraftID      *uint64   // flights.aircraft_id (nullable)
	CreatedAt       time.Time // flights.created_at
	UpdatedAt       time.Time // flights.updated_at
}
