package model

import "time"

// Storage kinds for a generated roster document.
const (
	StorageRelational = "relational"
	StorageDocument   = "document"
)

// Crew kinds recorded on assignment rows.
const (
	CrewKindFlight = "FLIGHT"
	CrewKindCabin  = "CABIN"
)

// CrewAssignment links one crew member to one generated roster. Both
// flight and cabin crew are recorded this way; no member row is ever
// mutated by a roster. Deleting a roster deletes its assignment rows,
// which releases the cabin crew it held.
//
// RosterRef is the roster's external id: the decimal row id for
// relational rosters, the archive document id for document rosters.
type CrewAssignment struct {
	ID        uint64    // crew_assignments.id
	RosterRef string    // crew_assignments.roster_ref
	FlightID  uint64    // crew_assignments.flight_id
	CrewKind  string    // crew_assignments.crew_kind (FLIGHT | CABIN)
	CrewID    uint64    // crew_assignments.crew_id
	Duty      string    // crew_assignments.duty (role or attendant type)
	CreatedAt time.Time // crew_assignments.created_at
}

// Roster is the generated snapshot document: the chosen crew and seat
// assignment for one flight plus summary metadata. Rosters are
// immutable after creation except for deletion.
type Roster struct {
	ID          string        `json:"id"`
	FlightID    uint64        `json:"flight_id"`
	Name        string        `json:"roster_name"`
	GeneratedBy string        `json:"generated_by"`
	GeneratedAt time.Time     `json:"generated_at"`
	StorageKind string        `json:"storage_kind"`
	Payload     RosterPayload `json:"roster_payload"`
	Summary     RosterSummary `json:"summary_metadata"`
}

// RosterHeader is the listing form of a roster: everything except the
// denormalized payload.
type RosterHeader struct {
	ID          string    `json:"id"`
	FlightID    uint64    `json:"flight_id"`
	Name        string    `json:"roster_name"`
	GeneratedBy string    `json:"generated_by"`
	GeneratedAt time.Time `json:"generated_at"`
	StorageKind string    `json:"storage_kind"`
}

// RosterPayload is the full denormalized snapshot stored with the
// roster. It is self-contained so consumers never need to join back to
// the live tables, whose contents may have changed since generation.
type RosterPayload struct {
	Flight     FlightInfo        `json:"flight" bson:"flight"`
	FlightCrew []FlightCrewEntry `json:"flight_crew" bson:"flight_crew"`
	CabinCrew  []CabinCrewEntry  `json:"cabin_crew" bson:"cabin_crew"`
	Passengers []PassengerEntry  `json:"passengers" bson:"passengers"`
}

// FlightInfo captures the flight and aircraft facts at generation time.
type FlightInfo struct {
	ID              uint64 `json:"id" bson:"id"`
	FlightNumber    string `json:"flight_number" bson:"flight_number"`
	OriginCode      string `json:"origin_code" bson:"origin_code"`
	DestinationCode string `json:"destination_code" bson:"destination_code"`
	DepartsAt       string `json:"departs_at" bson:"departs_at"`
	ArrivesAt       string `json:"arrives_at" bson:"arrives_at"`
	AircraftModel   string `json:"aircraft_model" bson:"aircraft_model"`
	TotalSeats      uint32 `json:"total_seats" bson:"total_seats"`
}

// FlightCrewEntry is one selected cockpit crew member with resolved
// languages.
type FlightCrewEntry struct {
	ID             uint64   `json:"id" bson:"id"`
	Name           string   `json:"name" bson:"name"`
	Role           string   `json:"role" bson:"role"`
	SeniorityLevel string   `json:"seniority_level" bson:"seniority_level"`
	Languages      []string `json:"languages" bson:"languages"`
}

// CabinCrewEntry is one selected cabin attendant.
type CabinCrewEntry struct {
	ID            uint64 `json:"id" bson:"id"`
	Name          string `json:"name" bson:"name"`
	AttendantType string `json:"attendant_type" bson:"attendant_type"`
}

// PassengerEntry is one passenger with the seat held at generation time.
type PassengerEntry struct {
	ID         uint64  `json:"id" bson:"id"`
	Name       string  `json:"name" bson:"name"`
	SeatNumber *string `json:"seat_number" bson:"seat_number"`
}

// RosterSummary holds the counts and rates surfaced alongside the
// payload. OccupancyRate is a percentage: seated passengers over total
// seats, times one hundred.
type RosterSummary struct {
	FlightCrewCount    int            `json:"flight_crew_count" bson:"flight_crew_count"`
	CabinCrewCount     int            `json:"cabin_crew_count" bson:"cabin_crew_count"`
	PassengerCount     int            `json:"passenger_count" bson:"passenger_count"`
	SeatedPassengers   int            `json:"seated_passengers" bson:"seated_passengers"`
	UnseatedPassengers int            `json:"unseated_passengers" bson:"unseated_passengers"`
	OccupancyRate      float64        `json:"occupancy_rate" bson:"occupancy_rate"`
	FlightCrewByRole   map[string]int `json:"flight_crew_by_role" bson:"flight_crew_by_role"`
	CabinCrewByType    map[string]int `json:"cabin_crew_by_type" bson:"cabin_crew_by_type"`
}
