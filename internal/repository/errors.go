// Package repository defines error types that are reused across
// multiple repositories. These sentinel values let handlers map
// failure scenarios to HTTP responses without inspecting driver
// errors: a missing flight becomes 404, an unreachable archive 503.
package repository

import "errors"

// ErrFlightNotFound is returned when a flight lookup yields no rows.
var ErrFlightNotFound = errors.New("flight not found")

// ErrAircraftNotFound is returned when an aircraft profile lookup
// yields no rows.
var ErrAircraftNotFound = errors.New("aircraft profile not found")

// ErrCrewNotFound is returned when one of an explicitly requested set
// of crew member ids does not exist.
var ErrCrewNotFound = errors.New("crew member not found")

// ErrRosterNotFound is returned when a roster lookup (relational or
// archive) yields no document.
var ErrRosterNotFound = errors.New("roster not found")

// ErrArchiveUnavailable wraps a failed write to the document archive.
// The caller requested document storage, so this is a hard failure;
// handlers translate it into HTTP 503 and no relational fallback is
// attempted.
var ErrArchiveUnavailable = errors.New("roster archive unavailable")
