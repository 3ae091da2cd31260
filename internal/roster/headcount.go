// Package roster implements the roster generation engine: crew
// selection, crew validation, seat assignment and summary computation.
// The engine is pure with respect to the database; callers fetch
// candidate pools through the repository layer and apply the results.
package roster

import "github.com/avolair/flight-roster/internal/model"

// FlightCrewRoles lists cockpit roles in selection order. Selection
// iterates this slice so results are deterministic regardless of map
// ordering.
var FlightCrewRoles = []string{
	model.RoleCaptain,
	model.RoleFirstOfficer,
	model.RoleFlightEngineer,
}

// RequiredFlightCrew returns the required headcount per cockpit role
// for an aircraft. Every flight needs one Captain and one First
// Officer; a Flight Engineer is required only on aircraft certified
// for a cockpit crew of three or more.
func RequiredFlightCrew(profile *model.AircraftProfile) map[string]int {
	req := map[string]int{
		model.RoleCaptain:      1,
		model.RoleFirstOfficer: 1,
	}
	if profile.MaxCrew >= 3 {
		req[model.RoleFlightEngineer] = 1
	}
	return req
}

// CabinHeadcount is the required cabin staffing for one flight.
type CabinHeadcount struct {
	Chief   int
	Regular int
	Chef    int
}

// ByType returns the headcount for a single attendant type.
func (h CabinHeadcount) ByType(attendantType string) int {
	switch attendantType {
	case model.AttendantChief:
		return h.Chief
	case model.AttendantRegular:
		return h.Regular
	case model.AttendantChef:
		return h.Chef
	}
	return 0
}

// RequiredCabinCrew returns the cabin staffing bracket for an aircraft
// of the given seat count. Brackets are inclusive at their lower bound:
// exactly 100 seats is the medium bracket, exactly 300 the largest.
func RequiredCabinCrew(totalSeats uint32) CabinHeadcount {
	switch {
	case totalSeats < 100:
		return CabinHeadcount{Chief: 1, Regular: 4, Chef: 0}
	case totalSeats < 200:
		return CabinHeadcount{Chief: 2, Regular: 8, Chef: 1}
	case totalSeats < 300:
		return CabinHeadcount{Chief: 3, Regular: 12, Chef: 1}
	}
	return CabinHeadcount{Chief: 4, Regular: 16, Chef: 2}
}
