package model

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

// A stored roster must come back exactly as generated: the payload and
// summary survive the JSON columns (and the archive's JSON transport)
// without loss.
func TestRosterJSONRoundTrip(t *testing.T) {
	seat := "2A"
	original := Roster{
		ID:          "42",
		FlightID:    7,
		Name:        "AMS morning",
		GeneratedBy: "ops",
		GeneratedAt: time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC),
		StorageKind: StorageRelational,
		Payload: RosterPayload{
			Flight: FlightInfo{
				ID: 7, FlightNumber: "AV100", OriginCode: "IST", DestinationCode: "AMS",
				DepartsAt: "2026-08-30T11:00:00Z", ArrivesAt: "2026-08-30T14:00:00Z",
				AircraftModel: "A320", TotalSeats: 180,
			},
			FlightCrew: []FlightCrewEntry{
				{ID: 1, Name: "Avery", Role: RoleCaptain, SeniorityLevel: SenioritySenior, Languages: []string{"en", "tr"}},
			},
			CabinCrew: []CabinCrewEntry{
				{ID: 10, Name: "Casey", AttendantType: AttendantChief},
			},
			Passengers: []PassengerEntry{
				{ID: 100, Name: "Harper", SeatNumber: &seat},
				{ID: 101, Name: "Jules", SeatNumber: nil},
			},
		},
		Summary: RosterSummary{
			FlightCrewCount: 1, CabinCrewCount: 1, PassengerCount: 2,
			SeatedPassengers: 1, UnseatedPassengers: 1, OccupancyRate: 0.5,
			FlightCrewByRole: map[string]int{RoleCaptain: 1},
			CabinCrewByType:  map[string]int{AttendantChief: 1},
		},
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Roster
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(decoded.Payload, original.Payload) {
		t.Errorf("payload changed in round trip:\n got %+v\nwant %+v", decoded.Payload, original.Payload)
	}
	if !reflect.DeepEqual(decoded.Summary, original.Summary) {
		t.Errorf("summary changed in round trip:\n got %+v\nwant %+v", decoded.Summary, original.Summary)
	}
	if !decoded.GeneratedAt.Equal(original.GeneratedAt) {
		t.Errorf("generated_at changed: got %v, want %v", decoded.GeneratedAt, original.GeneratedAt)
	}
	if decoded.ID != original.ID || decoded.FlightID != original.FlightID || decoded.StorageKind != original.StorageKind {
		t.Errorf("header fields changed: %+v", decoded)
	}
}
