package roster

import "github.com/avolair/flight-roster/internal/model"

// BuildSummary computes the roster's summary metadata from the final
// crew sets and the passenger list as it will be persisted (seat
// assignments already applied). OccupancyRate is seated passengers
// over total seats, as a percentage.
func BuildSummary(flightCrew []model.FlightCrewMember, cabinCrew []model.CabinCrewMember, passengers []model.Passenger, totalSeats uint32) model.RosterSummary {
	summary := model.RosterSummary{
		FlightCrewCount:  len(flightCrew),
		CabinCrewCount:   len(cabinCrew),
		PassengerCount:   len(passengers),
		FlightCrewByRole: make(map[string]int),
		CabinCrewByType:  make(map[string]int),
	}
	for _, m := range flightCrew {
		summary.FlightCrewByRole[m.Role]++
	}
	for _, m := range cabinCrew {
		summary.CabinCrewByType[m.AttendantType]++
	}
	for _, p := range passengers {
		if p.Seated() {
			summary.SeatedPassengers++
		}
	}
	summary.UnseatedPassengers = summary.PassengerCount - summary.SeatedPassengers
	if totalSeats > 0 {
		summary.OccupancyRate = float64(summary.SeatedPassengers) / float64(totalSeats) * 100
	}
	return summary
}
