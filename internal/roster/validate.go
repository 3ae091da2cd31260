package roster

import (
	"fmt"

	"github.com/avolair/flight-roster/internal/model"
)

// ValidateCrew cross-checks a candidate crew combination against the
// staffing rules. Every rule runs; the returned slice carries one
// message per violated rule so the caller can surface the complete
// list in a single response. The combination is valid iff the slice
// is empty.
func ValidateCrew(flightCrew []model.FlightCrewMember, cabinCrew []model.CabinCrewMember, profile *model.AircraftProfile) (bool, []string) {
	var violations []string

	roles := make(map[string]int)
	seniorities := make(map[string]int)
	for _, m := range flightCrew {
		roles[m.Role]++
		seniorities[model.NormalizeSeniority(m.SeniorityLevel)]++
	}

	if roles[model.RoleCaptain] < 1 {
		violations = append(violations, "flight crew must include at least one Captain")
	}
	if roles[model.RoleFirstOfficer] < 1 {
		violations = append(violations, "flight crew must include at least one First Officer")
	}
	if seniorities[model.SenioritySenior] < 1 {
		violations = append(violations, "flight crew must include at least one Senior member")
	}
	if seniorities[model.SeniorityJunior]+seniorities[model.SeniorityIntermediate] < 1 {
		violations = append(violations, "flight crew must include at least one Junior or Intermediate member")
	}
	if trainees := seniorities[model.SeniorityTrainee]; trainees > 2 {
		violations = append(violations, fmt.Sprintf("flight crew may include at most two Trainee members (have %d)", trainees))
	}

	types := make(map[string]int)
	for _, m := range cabinCrew {
		types[m.AttendantType]++
	}
	if n := types[model.AttendantChief]; n < 1 || n > 4 {
		violations = append(violations, fmt.Sprintf("cabin crew must include between 1 and 4 chief attendants (have %d)", n))
	}
	if n := types[model.AttendantRegular]; n < 4 || n > 16 {
		violations = append(violations, fmt.Sprintf("cabin crew must include between 4 and 16 regular attendants (have %d)", n))
	}
	if n := types[model.AttendantChef]; n > 2 {
		violations = append(violations, fmt.Sprintf("cabin crew may include at most 2 chefs (have %d)", n))
	}

	for _, m := range flightCrew {
		if !m.AllowsAircraft(profile.ID) {
			violations = append(violations, fmt.Sprintf("flight crew member %d (%s) is restricted to a different aircraft type than %d", m.ID, m.Name, profile.ID))
		}
	}
	for _, m := range cabinCrew {
		if !m.AllowsAircraft(profile.ID) {
			violations = append(violations, fmt.Sprintf("cabin crew member %d (%s) is not certified for aircraft type %d", m.ID, m.Name, profile.ID))
		}
	}

	return len(violations) == 0, violations
}
