package model

import "testing"

func TestParseSeatingLayout(t *testing.T) {
	raw := []byte(`{"rows":[{"row":1,"seats":[{"letter":"A","type":"business"},{"letter":"B","type":"standard"}]}]}`)
	layout := ParseSeatingLayout(raw)
	if !layout.Known {
		t.Fatal("Expected a known layout")
	}
	if len(layout.Rows) != 1 || layout.Rows[0].Number != 1 {
		t.Errorf("Unexpected rows: %+v", layout.Rows)
	}
	if layout.Rows[0].Seats[0].Letter != "A" || layout.Rows[0].Seats[0].Type != "business" {
		t.Errorf("Unexpected first seat: %+v", layout.Rows[0].Seats[0])
	}
}

func TestParseSeatingLayoutDegradedInputs(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("not json"),
		[]byte(`{"rows":[]}`),
		[]byte(`{"something":"else"}`),
	}
	for _, raw := range cases {
		if layout := ParseSeatingLayout(raw); layout.Known {
			t.Errorf("Expected Unknown layout for %q", raw)
		}
	}
}
