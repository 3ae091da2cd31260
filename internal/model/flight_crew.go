package model

import (
	"strings"
	"time"
)

// Cockpit crew roles. A roster needs a Captain and a First Officer on
// every flight, and a Flight Engineer on aircraft certified for three.
const (
	RoleCaptain        = "Captain"
	RoleFirstOfficer   = "First Officer"
	RoleFlightEngineer = "Flight Engineer"
)

// Seniority levels, canonical casing. Ranking is Senior > Intermediate >
// Junior > Trainee; levels outside this set rank lowest.
const (
	SenioritySenior       = "Senior"
	SeniorityIntermediate = "Intermediate"
	SeniorityJunior       = "Junior"
	SeniorityTrainee      = "Trainee"
)

// FlightCrewMember is a pilot or engineer eligible for cockpit duty.
// Flight crew are never consumed by a roster: assignments are join
// records and a member stays selectable for later generations.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – full display name.
//  Role               – one of the Role* constants.
//  SeniorityLevel     – canonical seniority (see NormalizeSeniority).
//  VehicleRestriction – aircraft profile the member is limited to (nil = any).
//  Languages          – spoken languages, ordered by fluency.
type FlightCrewMember struct {
	ID                 uint64    // flight_crew.id
	Name               string    // flight_crew.name
	Role               string    // flight_crew.role
	SeniorityLevel     string    // flight_crew.seniority_level
	VehicleRestriction *uint64   // flight_crew.vehicle_restriction (nullable)
	Languages          []string  // flight_crew.languages (JSON array)
	CreatedAt          time.Time // flight_crew.created_at
	UpdatedAt          time.Time // flight_crew.updated_at
}

// AllowsAircraft reports whether the member may serve the given aircraft
// profile. Unrestricted members are always eligible.
func (m FlightCrewMember) AllowsAircraft(aircraftID uint64) bool {
	return m.VehicleRestriction == nil || *m.VehicleRestriction == aircraftID
}

// NormalizeSeniority maps a stored seniority label to its canonical
// casing. Labels were written inconsistently by upstream systems
// ("senior", "SENIOR"); normalization happens once, at the scan
// boundary, so the engine only ever compares canonical values.
// Unrecognized labels are returned trimmed and unchanged; they rank
// below Trainee everywhere.
func NormalizeSeniority(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "senior":
		return SenioritySenior
	case "intermediate":
		return SeniorityIntermediate
	case "junior":
		return SeniorityJunior
	case "trainee":
		return SeniorityTrainee
	}
	return strings.TrimSpace(s)
}

// SeniorityRank returns the ordering weight of a canonical seniority
// level. Higher ranks are selected first.
func SeniorityRank(level string) int {
	switch level {
	case SenioritySenior:
		return 3
	case SeniorityIntermediate:
		return 2
	case SeniorityJunior:
		return 1
	}
	return 0
}
