package roster

import (
	"math"
	"testing"

	"github.com/avolair/flight-roster/internal/model"
)

func TestBuildSummary(t *testing.T) {
	flightCrew := []model.FlightCrewMember{
		{ID: 1, Role: model.RoleCaptain, SeniorityLevel: model.SenioritySenior},
		{ID: 2, Role: model.RoleFirstOfficer, SeniorityLevel: model.SeniorityJunior},
	}
	cabinCrew := []model.CabinCrewMember{
		{ID: 10, AttendantType: model.AttendantChief},
		{ID: 11, AttendantType: model.AttendantRegular},
		{ID: 12, AttendantType: model.AttendantRegular},
	}
	a, b := "1A", "1B"
	passengers := []model.Passenger{
		{ID: 100, SeatNumber: &a},
		{ID: 101, SeatNumber: &b},
		{ID: 102},
	}

	s := BuildSummary(flightCrew, cabinCrew, passengers, 250)
	if s.FlightCrewCount != 2 || s.CabinCrewCount != 3 || s.PassengerCount != 3 {
		t.Errorf("Unexpected counts: %+v", s)
	}
	if s.SeatedPassengers != 2 || s.UnseatedPassengers != 1 {
		t.Errorf("Expected 2 seated / 1 unseated, got %d/%d", s.SeatedPassengers, s.UnseatedPassengers)
	}
	if math.Abs(s.OccupancyRate-0.8) > 1e-9 {
		t.Errorf("Expected occupancy 0.8%%, got %f", s.OccupancyRate)
	}
	if s.FlightCrewByRole[model.RoleCaptain] != 1 || s.CabinCrewByType[model.AttendantRegular] != 2 {
		t.Errorf("Unexpected breakdowns: %+v", s)
	}
}

func TestBuildSummaryZeroSeats(t *testing.T) {
	a := "1A"
	s := BuildSummary(nil, nil, []model.Passenger{{ID: 1, SeatNumber: &a}}, 0)
	if s.OccupancyRate != 0 {
		t.Errorf("Expected occupancy 0 for zero total seats, got %f", s.OccupancyRate)
	}
}
