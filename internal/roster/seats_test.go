package roster

import (
	"testing"

	"github.com/avolair/flight-roster/internal/model"
)

func seat(s string) *string { return &s }

func TestAssignSeatsSkipsSeatedPassengers(t *testing.T) {
	passengers := []model.Passenger{
		{ID: 1, SeatNumber: seat("1A")},
		{ID: 2},
	}
	layout := model.SeatingLayout{Known: true, Rows: []model.SeatRow{
		{Number: 1, Seats: []model.LayoutSeat{{Letter: "A", Type: "standard"}, {Letter: "B", Type: "standard"}}},
	}}

	assigned := AssignSeats(passengers, layout, ReservedSeats(passengers))
	if len(assigned) != 1 {
		t.Fatalf("Expected 1 assignment, got %d", len(assigned))
	}
	if _, ok := assigned[1]; ok {
		t.Error("Expected pre-seated passenger 1 to be skipped")
	}
	if assigned[2] != "1B" {
		t.Errorf("Expected passenger 2 in 1B (1A reserved), got %q", assigned[2])
	}
}

func TestAssignSeatsPriorityOrder(t *testing.T) {
	layout := model.SeatingLayout{Known: true, Rows: []model.SeatRow{
		{Number: 1, Seats: []model.LayoutSeat{{Letter: "A", Type: "exit"}, {Letter: "B", Type: "empty"}}},
		{Number: 2, Seats: []model.LayoutSeat{{Letter: "A", Type: "standard"}}},
		{Number: 3, Seats: []model.LayoutSeat{{Letter: "A", Type: "business"}}},
	}}
	passengers := []model.Passenger{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	assigned := AssignSeats(passengers, layout, nil)
	if assigned[1] != "3A" {
		t.Errorf("Expected first passenger in business seat 3A, got %q", assigned[1])
	}
	if assigned[2] != "2A" {
		t.Errorf("Expected second passenger in standard seat 2A, got %q", assigned[2])
	}
	if assigned[3] != "1A" {
		t.Errorf("Expected third passenger in exit seat 1A, got %q", assigned[3])
	}
	if assigned[4] != "1B" {
		t.Errorf("Expected fourth passenger in empty seat 1B, got %q", assigned[4])
	}
}

func TestAssignSeatsFallbackGrid(t *testing.T) {
	passengers := []model.Passenger{{ID: 1}, {ID: 2}, {ID: 3}}
	reserved := map[string]struct{}{"1A": {}, "1B": {}}

	assigned := AssignSeats(passengers, model.SeatingLayout{}, reserved)
	if assigned[1] != "1C" || assigned[2] != "1D" || assigned[3] != "1E" {
		t.Errorf("Expected fallback grid to continue past reserved seats, got %v", assigned)
	}
}

func TestAssignSeatsPoolExhaustion(t *testing.T) {
	layout := model.SeatingLayout{Known: true, Rows: []model.SeatRow{
		{Number: 1, Seats: []model.LayoutSeat{{Letter: "A", Type: "standard"}}},
	}}
	passengers := []model.Passenger{{ID: 1}, {ID: 2}, {ID: 3}}

	assigned := AssignSeats(passengers, layout, nil)
	if len(assigned) != 1 {
		t.Errorf("Expected only 1 assignment with a single free seat, got %d", len(assigned))
	}
	if assigned[1] != "1A" {
		t.Errorf("Expected passenger 1 in 1A, got %q", assigned[1])
	}
}

func TestAssignSeatsDuplicateLayoutEntries(t *testing.T) {
	// Row 1 appears twice with the same letters; only unique seat ids
	// may be handed out.
	layout := model.SeatingLayout{Known: true, Rows: []model.SeatRow{
		{Number: 1, Seats: []model.LayoutSeat{{Letter: "A", Type: "standard"}, {Letter: "B", Type: "standard"}}},
		{Number: 1, Seats: []model.LayoutSeat{{Letter: "A", Type: "standard"}, {Letter: "B", Type: "standard"}}},
	}}
	passengers := []model.Passenger{{ID: 1}, {ID: 2}, {ID: 3}}

	assigned := AssignSeats(passengers, layout, nil)
	if len(assigned) != 2 {
		t.Fatalf("Expected 2 assignments from 2 unique seats, got %d", len(assigned))
	}
	if assigned[1] == assigned[2] {
		t.Errorf("Expected distinct seats, both passengers got %q", assigned[1])
	}
}

func TestAssignSeatsDoesNotMutateInputs(t *testing.T) {
	passengers := []model.Passenger{{ID: 1}}
	AssignSeats(passengers, model.SeatingLayout{}, nil)
	if passengers[0].SeatNumber != nil {
		t.Error("Expected allocator to leave the passenger slice untouched")
	}
}

func TestSeatPriorityNormalizesType(t *testing.T) {
	if seatPriority(" Business ") != priorityBusiness {
		t.Error("Expected business type to normalize case and whitespace")
	}
	if seatPriority("economy") != priorityStandard {
		t.Error("Expected economy to map to the standard tier")
	}
	if seatPriority("recliner") != priorityStandard {
		t.Error("Expected unknown types to map to the standard tier")
	}
}

func TestReservedSeats(t *testing.T) {
	empty := ""
	passengers := []model.Passenger{
		{ID: 1, SeatNumber: seat("4C")},
		{ID: 2},
		{ID: 3, SeatNumber: &empty},
	}
	reserved := ReservedSeats(passengers)
	if len(reserved) != 1 {
		t.Fatalf("Expected 1 reserved seat, got %d", len(reserved))
	}
	if _, ok := reserved["4C"]; !ok {
		t.Error("Expected 4C reserved")
	}
}
