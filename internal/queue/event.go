// Package queue defines message payloads exchanged over the message broker.
package queue

// RosterGeneratedEvent is published after a roster is successfully
// committed. It carries enough information for downstream consumers to
// log, notify, or feed analytics without querying the primary database.
type RosterGeneratedEvent struct {
	RosterID         string  `json:"roster_id"`
	FlightID         uint64  `json:"flight_id"`
	FlightNumber     string  `json:"flight_number"`
	RosterName       string  `json:"roster_name"`
	GeneratedBy      string  `json:"generated_by"`
	StorageKind      string  `json:"storage_kind"`
	FlightCrewCount  int     `json:"flight_crew_count"`
	CabinCrewCount   int     `json:"cabin_crew_count"`
	PassengerCount   int     `json:"passenger_count"`
	SeatedPassengers int     `json:"seated_passengers"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	GeneratedAt      string  `json:"generated_at"`
}
