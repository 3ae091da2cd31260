package roster

import (
	"strings"
	"testing"

	"github.com/avolair/flight-roster/internal/model"
)

func validFlightCrew() []model.FlightCrewMember {
	return []model.FlightCrewMember{
		{ID: 1, Name: "Avery", Role: model.RoleCaptain, SeniorityLevel: model.SenioritySenior},
		{ID: 2, Name: "Blake", Role: model.RoleFirstOfficer, SeniorityLevel: model.SeniorityJunior},
	}
}

func validCabinCrew() []model.CabinCrewMember {
	crew := []model.CabinCrewMember{{ID: 10, Name: "Casey", AttendantType: model.AttendantChief}}
	for i := uint64(11); i < 15; i++ {
		crew = append(crew, model.CabinCrewMember{ID: i, AttendantType: model.AttendantRegular})
	}
	return crew
}

func TestValidateCrewAccepts(t *testing.T) {
	profile := &model.AircraftProfile{ID: 1, MaxCrew: 2, TotalSeats: 80}
	ok, violations := ValidateCrew(validFlightCrew(), validCabinCrew(), profile)
	if !ok {
		t.Errorf("Expected crew to validate, got violations: %v", violations)
	}
}

func TestValidateCrewMissingCaptain(t *testing.T) {
	profile := &model.AircraftProfile{ID: 1}
	crew := []model.FlightCrewMember{
		{ID: 2, Role: model.RoleFirstOfficer, SeniorityLevel: model.SenioritySenior},
		{ID: 3, Role: model.RoleFirstOfficer, SeniorityLevel: model.SeniorityJunior},
	}
	ok, violations := ValidateCrew(crew, validCabinCrew(), profile)
	if ok {
		t.Fatal("Expected validation to fail without a Captain")
	}
	found := false
	for _, v := range violations {
		if strings.Contains(v, "Captain") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a violation naming the Captain rule, got %v", violations)
	}
}

func TestValidateCrewSeniorityMix(t *testing.T) {
	profile := &model.AircraftProfile{ID: 1}

	// Two seniors: no junior/intermediate present.
	crew := []model.FlightCrewMember{
		{ID: 1, Role: model.RoleCaptain, SeniorityLevel: model.SenioritySenior},
		{ID: 2, Role: model.RoleFirstOfficer, SeniorityLevel: model.SenioritySenior},
	}
	if ok, _ := ValidateCrew(crew, validCabinCrew(), profile); ok {
		t.Error("Expected failure without a Junior or Intermediate member")
	}

	// All juniors: no senior present.
	crew = []model.FlightCrewMember{
		{ID: 1, Role: model.RoleCaptain, SeniorityLevel: model.SeniorityJunior},
		{ID: 2, Role: model.RoleFirstOfficer, SeniorityLevel: model.SeniorityJunior},
	}
	if ok, _ := ValidateCrew(crew, validCabinCrew(), profile); ok {
		t.Error("Expected failure without a Senior member")
	}
}

func TestValidateCrewTraineeCap(t *testing.T) {
	profile := &model.AircraftProfile{ID: 1}
	crew := append(validFlightCrew(),
		model.FlightCrewMember{ID: 5, Role: model.RoleFirstOfficer, SeniorityLevel: model.SeniorityTrainee},
		model.FlightCrewMember{ID: 6, Role: model.RoleFirstOfficer, SeniorityLevel: model.SeniorityTrainee},
	)
	if ok, violations := ValidateCrew(crew, validCabinCrew(), profile); !ok {
		t.Errorf("Expected two trainees to pass, got %v", violations)
	}

	crew = append(crew, model.FlightCrewMember{ID: 7, Role: model.RoleFirstOfficer, SeniorityLevel: model.SeniorityTrainee})
	if ok, _ := ValidateCrew(crew, validCabinCrew(), profile); ok {
		t.Error("Expected three trainees to fail")
	}
}

func TestValidateCrewCabinBounds(t *testing.T) {
	profile := &model.AircraftProfile{ID: 1}

	// No chief.
	var cabin []model.CabinCrewMember
	for i := uint64(11); i < 15; i++ {
		cabin = append(cabin, model.CabinCrewMember{ID: i, AttendantType: model.AttendantRegular})
	}
	if ok, _ := ValidateCrew(validFlightCrew(), cabin, profile); ok {
		t.Error("Expected failure without a chief attendant")
	}

	// Too many regulars.
	cabin = validCabinCrew()
	for i := uint64(20); i < 33; i++ {
		cabin = append(cabin, model.CabinCrewMember{ID: i, AttendantType: model.AttendantRegular})
	}
	if ok, _ := ValidateCrew(validFlightCrew(), cabin, profile); ok {
		t.Error("Expected failure with 17 regular attendants")
	}

	// Three chefs.
	cabin = append(validCabinCrew(),
		model.CabinCrewMember{ID: 40, AttendantType: model.AttendantChef},
		model.CabinCrewMember{ID: 41, AttendantType: model.AttendantChef},
		model.CabinCrewMember{ID: 42, AttendantType: model.AttendantChef},
	)
	if ok, _ := ValidateCrew(validFlightCrew(), cabin, profile); ok {
		t.Error("Expected failure with 3 chefs")
	}
}

func TestValidateCrewRestrictionMismatch(t *testing.T) {
	profile := &model.AircraftProfile{ID: 1}
	other := uint64(9)
	crew := validFlightCrew()
	crew[0].VehicleRestriction = &other
	cabin := validCabinCrew()
	cabin[1].VehicleRestrictions = []uint64{9}

	ok, violations := ValidateCrew(crew, cabin, profile)
	if ok {
		t.Fatal("Expected restriction mismatches to fail validation")
	}
	if len(violations) != 2 {
		t.Errorf("Expected 2 violations (one per restricted member), got %v", violations)
	}
}

func TestValidateCrewCollectsAllViolations(t *testing.T) {
	profile := &model.AircraftProfile{ID: 1}
	// Empty crews violate Captain, First Officer, Senior, Junior/Intermediate,
	// chief bounds and regular bounds at once.
	ok, violations := ValidateCrew(nil, nil, profile)
	if ok {
		t.Fatal("Expected empty crews to fail validation")
	}
	if len(violations) != 6 {
		t.Errorf("Expected 6 violations for empty crews, got %d: %v", len(violations), violations)
	}
}
