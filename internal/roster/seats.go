package roster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avolair/flight-roster/internal/model"
)

// Fallback grid used when an aircraft has no usable seating layout:
// rows 1-50, letters A-F, 300 synthetic seats.
const (
	fallbackRows    = 50
	fallbackLetters = "ABCDEF"
)

// Seat type priorities. Lower is offered first: premium cabin fills
// before economy, exit rows are a last resort for eligibility reasons,
// and seats marked empty are only handed out when nothing else is left.
const (
	priorityBusiness = 0
	priorityStandard = 1
	priorityExit     = 2
	priorityEmpty    = 3
)

func seatPriority(seatType string) int {
	switch strings.ToLower(strings.TrimSpace(seatType)) {
	case "business":
		return priorityBusiness
	case "standard", "economy":
		return priorityStandard
	case "exit":
		return priorityExit
	case "empty":
		return priorityEmpty
	}
	return priorityStandard
}

type candidateSeat struct {
	id       string // "{row}{letter}", e.g. "14C"
	priority int
}

// AssignSeats maps unseated passengers to free seats using a
// priority-ordered first-fit strategy. Passengers are walked in the
// order supplied; pre-seated passengers are skipped and never appear
// in the result. Seats listed in reserved are never offered. When the
// pool runs out, remaining passengers stay unassigned; the caller
// surfaces the shortfall through the roster summary.
//
// The function is pure: it returns a passenger-id to seat-id mapping
// and mutates neither inputs nor stored records.
func AssignSeats(passengers []model.Passenger, layout model.SeatingLayout, reserved map[string]struct{}) map[uint64]string {
	pool := buildSeatPool(layout, reserved)
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].priority < pool[j].priority })

	assigned := make(map[uint64]string)
	next := 0
	for _, p := range passengers {
		if p.Seated() {
			continue
		}
		if next >= len(pool) {
			break
		}
		assigned[p.ID] = pool[next].id
		next++
	}
	return assigned
}

// buildSeatPool walks the layout rows in order and collects every seat
// not already reserved. An Unknown layout yields the synthetic
// fallback grid in row-major, letter-major order.
func buildSeatPool(layout model.SeatingLayout, reserved map[string]struct{}) []candidateSeat {
	if !layout.Known {
		pool := make([]candidateSeat, 0, fallbackRows*len(fallbackLetters))
		for row := 1; row <= fallbackRows; row++ {
			for _, letter := range fallbackLetters {
				id := fmt.Sprintf("%d%c", row, letter)
				if _, taken := reserved[id]; taken {
					continue
				}
				pool = append(pool, candidateSeat{id: id, priority: priorityStandard})
			}
		}
		return pool
	}

	var pool []candidateSeat
	seen := make(map[string]struct{})
	for _, row := range layout.Rows {
		for _, seat := range row.Seats {
			id := fmt.Sprintf("%d%s", row.Number, seat.Letter)
			if _, taken := reserved[id]; taken {
				continue
			}
			// A layout that repeats a row or letter must not put two
			// passengers in the same seat; the first occurrence wins.
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			pool = append(pool, candidateSeat{id: id, priority: seatPriority(seat.Type)})
		}
	}
	return pool
}

// ReservedSeats collects the seat numbers already held by the given
// passengers, for use as the allocator's reserved set.
func ReservedSeats(passengers []model.Passenger) map[string]struct{} {
	reserved := make(map[string]struct{})
	for _, p := range passengers {
		if p.Seated() {
			reserved[*p.SeatNumber] = struct{}{}
		}
	}
	return reserved
}
