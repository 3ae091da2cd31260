package model

import "time"

// Cabin attendant types. Required headcounts per type scale with the
// aircraft's seat count.
const (
	AttendantChief   = "chief"
	AttendantRegular = "regular"
	AttendantChef    = "chef"
)

// CabinCrewMember is a cabin attendant. Unlike flight crew, cabin crew
// availability is gated: a member with an active roster assignment is
// not selectable until that roster is deleted. Availability is derived
// from the crew_assignments table, never stored on the member itself.
//
// Fields:
//  ID                  – primary key identifier.
//  Name                – full display name.
//  AttendantType       – one of the Attendant* constants.
//  VehicleRestrictions – aircraft profile ids the member is limited to
//                        (nil or empty = any aircraft).
type CabinCrewMember struct {
	ID                  uint64    // cabin_crew.id
	Name                string    // cabin_crew.name
	AttendantType       string    // cabin_crew.attendant_type
	VehicleRestrictions []uint64  // cabin_crew.vehicle_restrictions (JSON array, nullable)
	CreatedAt           time.Time // cabin_crew.created_at
	UpdatedAt           time.Time // cabin_crew.updated_at
}

// AllowsAircraft reports whether the member may serve the given aircraft
// profile. An empty restriction set means unrestricted.
func (m CabinCrewMember) AllowsAircraft(aircraftID uint64) bool {
	if len(m.VehicleRestrictions) == 0 {
		return true
	}
	for _, id := range m.VehicleRestrictions {
		if id == aircraftID {
			return true
		}
	}
	return false
}
