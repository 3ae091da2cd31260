package model

import (
	"encoding/json"
	"time"
)

// AircraftProfile is the reusable specification of an aircraft type:
// its capacity, its seating layout and the ceiling on cockpit crew size.
// Flights reference a profile; crew members may be restricted to one.
//
// Fields:
//  ID         – primary key identifier.
//  ModelName  – marketing name of the type (e.g. "A330-300").
//  TotalSeats – total passenger seats (>= 1).
//  MaxCrew    – maximum cockpit crew size (>= 2).
//  Layout     – parsed seating layout; may be the Unknown variant.
type AircraftProfile struct {
	ID         uint64        // aircraft_profiles.id
	ModelName  string        // aircraft_profiles.model_name
	TotalSeats uint32        // aircraft_profiles.total_seats
	MaxCrew    uint32        // aircraft_profiles.max_crew
	Layout     SeatingLayout // parsed from aircraft_profiles.seating_layout (JSON, nullable)
	CreatedAt  time.Time     // aircraft_profiles.created_at
	UpdatedAt  time.Time     // aircraft_profiles.updated_at
}

// SeatingLayout is a tagged variant describing the seat grid of an
// aircraft. Known is false when the stored layout was absent or could
// not be parsed; consumers must handle that case explicitly instead of
// sniffing the structure at runtime.
type SeatingLayout struct {
	Known bool
	Rows  []SeatRow
}

// SeatRow is one physical row of the layout.
type SeatRow struct {
	Number int          `json:"row"`
	Seats  []LayoutSeat `json:"seats"`
}

// LayoutSeat is a single seat position within a row. Type is one of
// standard, economy, business, exit or empty; anything else is treated
// as standard by consumers.
type LayoutSeat struct {
	Letter string `json:"letter"`
	Type   string `json:"type"`
}

// ParseSeatingLayout decodes the raw JSON column into a SeatingLayout.
// Absent, malformed or empty input yields the Unknown variant rather
// than an error; a missing layout is a degraded state, not a failure.
func ParseSeatingLayout(raw []byte) SeatingLayout {
	if len(raw) == 0 {
		return SeatingLayout{}
	}
	var decoded struct {
		Rows []SeatRow `json:"rows"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return SeatingLayout{}
	}
	if len(decoded.Rows) == 0 {
		return SeatingLayout{}
	}
	return SeatingLayout{Known: true, Rows: decoded.Rows}
}
