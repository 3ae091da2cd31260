package handler

import "testing"

func TestIsRelationalID(t *testing.T) {
	cases := map[string]bool{
		"1":                        true,
		"482":                      true,
		"":                         false,
		"12a":                      false,
		"64b0c26f9d3e8a541f77b101": false,
		// an ObjectID can be 24 decimal digits; length decides, not content
		"123456789012345678901234": false,
	}
	for id, want := range cases {
		if got := isRelationalID(id); got != want {
			t.Errorf("isRelationalID(%q) = %v, want %v", id, got, want)
		}
	}
}
