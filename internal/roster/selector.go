package roster

import (
	"log"
	"sort"

	"github.com/avolair/flight-roster/internal/model"
)

// ExclusionSet tracks crew ids already committed within one selection
// pass so that sequential selector calls never double-book a member.
type ExclusionSet map[uint64]struct{}

// NewExclusionSet builds a set pre-populated with the given ids.
func NewExclusionSet(ids ...uint64) ExclusionSet {
	s := make(ExclusionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether the id is already committed.
func (s ExclusionSet) Has(id uint64) bool {
	_, ok := s[id]
	return ok
}

// Add commits an id to the set.
func (s ExclusionSet) Add(id uint64) { s[id] = struct{}{} }

// Selector picks crew for one aircraft from pre-fetched candidate
// pools. Pools must be in fetch order: ranking is stable with respect
// to it, and cabin crew are taken in it directly. The cabin pool must
// already be filtered to available members (no active assignment);
// that gate is a repository query, not a selector concern.
type Selector struct {
	FlightPool map[string][]model.FlightCrewMember // candidates keyed by role
	CabinPool  map[string][]model.CabinCrewMember  // available candidates keyed by attendant type
}

// SelectFlightCrew picks cockpit crew for the aircraft. Per role it
// filters out excluded and type-restricted candidates, ranks the rest
// by seniority descending (stable, so fetch order breaks ties) and
// takes the required headcount. Selected ids are added to exclude so
// later calls sharing the set cannot re-pick them.
//
// Under-supply is not an error here: the selector returns what it
// found and ValidateCrew is the enforcement point.
func (s *Selector) SelectFlightCrew(profile *model.AircraftProfile, exclude ExclusionSet) []model.FlightCrewMember {
	required := RequiredFlightCrew(profile)
	picked := make([]model.FlightCrewMember, 0, len(required))
	for _, role := range FlightCrewRoles {
		need := required[role]
		if need == 0 {
			continue
		}
		eligible := make([]model.FlightCrewMember, 0, len(s.FlightPool[role]))
		for _, m := range s.FlightPool[role] {
			if exclude.Has(m.ID) {
				continue
			}
			if !m.AllowsAircraft(profile.ID) {
				continue
			}
			eligible = append(eligible, m)
		}
		sort.SliceStable(eligible, func(i, j int) bool {
			return model.SeniorityRank(eligible[i].SeniorityLevel) > model.SeniorityRank(eligible[j].SeniorityLevel)
		})
		if need > len(eligible) {
			log.Printf("roster: only %d of %d required %s candidates available", len(eligible), need, role)
			need = len(eligible)
		}
		for _, m := range eligible[:need] {
			picked = append(picked, m)
			exclude.Add(m.ID)
		}
	}
	return picked
}

// SelectCabinCrew picks cabin attendants for the aircraft. Per type it
// takes up to the bracket headcount in fetch order, skipping excluded
// and restricted members. No seniority ranking applies to cabin crew.
// Under-fulfilment is logged as a warning; ValidateCrew decides
// whether the combination is acceptable.
func (s *Selector) SelectCabinCrew(profile *model.AircraftProfile, exclude ExclusionSet) []model.CabinCrewMember {
	headcount := RequiredCabinCrew(profile.TotalSeats)
	var picked []model.CabinCrewMember
	for _, attendantType := range []string{model.AttendantChief, model.AttendantRegular, model.AttendantChef} {
		need := headcount.ByType(attendantType)
		if need == 0 {
			continue
		}
		taken := 0
		for _, m := range s.CabinPool[attendantType] {
			if taken == need {
				break
			}
			if exclude.Has(m.ID) {
				continue
			}
			if !m.AllowsAircraft(profile.ID) {
				continue
			}
			picked = append(picked, m)
			exclude.Add(m.ID)
			taken++
		}
		if taken < need {
			log.Printf("roster: only %d of %d required %s attendants available", taken, need, attendantType)
		}
	}
	return picked
}
