package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/avolair/flight-roster/internal/model"
	"github.com/avolair/flight-roster/internal/queue"
	"github.com/avolair/flight-roster/internal/repository"
	"github.com/avolair/flight-roster/internal/roster"
	queue_publisher "github.com/avolair/flight-roster/internal/service"
)

// RosterArchive is the document-store surface the roster handlers
// consume. *repository.RosterArchive implements it; tests substitute
// in-memory fakes.
type RosterArchive interface {
	Insert(ctx context.Context, roster *model.Roster) (string, error)
	GetByID(ctx context.Context, hexID string) (*model.Roster, error)
	ListByFlight(ctx context.Context, flightID uint64, limit int64) ([]model.RosterHeader, error)
	Delete(ctx context.Context, hexID string) error
}

// RosterHandler owns the generate-roster workflow end to end plus
// roster retrieval and deletion. All roster writes for one generation
// happen inside a single transaction: either the full roster (crew
// links, seats, document) persists, or nothing does. Methods assume
// JWT authentication and role validation have already been performed
// by middleware.
type RosterHandler struct {
	FlightRepo     *repository.FlightRepo
	AircraftRepo   *repository.AircraftRepo
	FlightCrewRepo *repository.FlightCrewRepo
	CabinCrewRepo  *repository.CabinCrewRepo
	PassengerRepo  *repository.PassengerRepo
	AssignmentRepo *repository.CrewAssignmentRepo
	RosterRepo     *repository.RosterRepo
	Archive        RosterArchive // nil when document storage is not configured
	Cache          *redis.Client // nil when caching is disabled
	CachePrefix    string
}

// NewRosterHandler constructs a RosterHandler. The relational repos
// are mandatory; Archive and Cache may be nil.
func NewRosterHandler(flightRepo *repository.FlightRepo, aircraftRepo *repository.AircraftRepo, flightCrewRepo *repository.FlightCrewRepo, cabinCrewRepo *repository.CabinCrewRepo, passengerRepo *repository.PassengerRepo, assignmentRepo *repository.CrewAssignmentRepo, rosterRepo *repository.RosterRepo, archive RosterArchive, cache *redis.Client, cachePrefix string) *RosterHandler {
	if flightRepo == nil || aircraftRepo == nil || flightCrewRepo == nil || cabinCrewRepo == nil || passengerRepo == nil || assignmentRepo == nil || rosterRepo == nil {
		panic("nil repository passed to NewRosterHandler")
	}
	return &RosterHandler{
		FlightRepo:     flightRepo,
		AircraftRepo:   aircraftRepo,
		FlightCrewRepo: flightCrewRepo,
		CabinCrewRepo:  cabinCrewRepo,
		PassengerRepo:  passengerRepo,
		AssignmentRepo: assignmentRepo,
		RosterRepo:     rosterRepo,
		Archive:        archive,
		Cache:          cache,
		CachePrefix:    cachePrefix,
	}
}

type generateRosterRequest struct {
	RosterName      string   `json:"roster_name"`
	GeneratedBy     string   `json:"generated_by"`
	Storage         string   `json:"storage"` // relational | document (default relational)
	AutoSelectCrew  bool     `json:"auto_select_crew"`
	FlightCrewIDs   []uint64 `json:"flight_crew_ids"`
	CabinCrewIDs    []uint64 `json:"cabin_crew_ids"`
	AutoAssignSeats bool     `json:"auto_assign_seats"`
}

// GenerateRoster handles POST /v1/flights/:id/roster. It loads the
// flight and its aircraft profile, acquires crew (automatic selection
// or caller-specified ids), gates the combination through the crew
// validator, optionally assigns seats, and persists the roster
// snapshot to the chosen store. Validator rejection returns 400 with
// the complete violation list; nothing is persisted in that case.
func (h *RosterHandler) GenerateRoster(c echo.Context) error {
	flightID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || flightID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	var req generateRosterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.RosterName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roster_name is required"})
	}
	if req.Storage == "" {
		req.Storage = model.StorageRelational
	}
	if req.Storage != model.StorageRelational && req.Storage != model.StorageDocument {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "storage must be 'relational' or 'document'"})
	}
	if req.Storage == model.StorageDocument && h.Archive == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "document storage is not configured"})
	}
	if req.GeneratedBy == "" {
		// fall back to the authenticated subject for the audit field
		if uid, err := getUserID(c); err == nil {
			req.GeneratedBy = uid
		}
	}

	ctx := c.Request().Context()
	flight, err := h.FlightRepo.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if flight.AircraftID == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "flight has no aircraft profile"})
	}
	aircraft, err := h.AircraftRepo.GetByID(ctx, *flight.AircraftID)
	if err != nil {
		if errors.Is(err, repository.ErrAircraftNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "aircraft profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// Crew acquisition: either the selectors run over freshly fetched
	// candidate pools, or the caller's explicit ids are resolved.
	var flightCrew []model.FlightCrewMember
	var cabinCrew []model.CabinCrewMember
	if req.AutoSelectCrew {
		flightCrew, cabinCrew, err = h.selectCrew(c, aircraft)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	} else {
		if len(req.FlightCrewIDs) == 0 && len(req.CabinCrewIDs) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "manual crew selection requires flight_crew_ids or cabin_crew_ids"})
		}
		flightCrew, err = h.FlightCrewRepo.GetByIDs(ctx, req.FlightCrewIDs)
		if err == nil {
			cabinCrew, err = h.CabinCrewRepo.GetByIDs(ctx, req.CabinCrewIDs)
		}
		if err != nil {
			if errors.Is(err, repository.ErrCrewNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "crew member not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}

	// Validation gate: all rules run, the complete list is returned in
	// one response, and nothing is persisted on rejection.
	valid, violations := roster.ValidateCrew(flightCrew, cabinCrew, aircraft)
	if !valid {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":      "crew validation failed",
			"violations": violations,
		})
	}

	passengers, err := h.PassengerRepo.ListByFlight(ctx, flightID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	var seatMapping map[uint64]string
	if req.AutoAssignSeats {
		seatMapping = roster.AssignSeats(passengers, aircraft.Layout, roster.ReservedSeats(passengers))
	}

	tx, err := h.FlightRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	archiveRef := ""
	defer func() {
		if committed {
			return
		}
		_ = tx.Rollback()
		// The archive insert sits outside the SQL transaction, so any
		// failure after it must also remove the document or a rolled-back
		// roster stays retrievable. A fresh context is used: the request's
		// may be the very thing that failed.
		if archiveRef != "" {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = h.Archive.Delete(dctx, archiveRef)
			cancel()
		}
	}()

	// Apply the seat mapping to storage and to the in-memory copies
	// that feed the snapshot payload.
	for i := range passengers {
		seat, ok := seatMapping[passengers[i].ID]
		if !ok {
			continue
		}
		if err := h.PassengerRepo.UpdateSeatTx(ctx, tx, passengers[i].ID, seat); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to assign seats"})
		}
		s := seat
		passengers[i].SeatNumber = &s
	}

	newRoster := &model.Roster{
		FlightID:    flightID,
		Name:        req.RosterName,
		GeneratedBy: req.GeneratedBy,
		GeneratedAt: time.Now().UTC(),
		StorageKind: req.Storage,
		Payload:     buildPayload(flight, aircraft, flightCrew, cabinCrew, passengers),
		Summary:     roster.BuildSummary(flightCrew, cabinCrew, passengers, aircraft.TotalSeats),
	}

	var ref string
	if req.Storage == model.StorageDocument {
		// A failed archive write rolls everything back and is a hard
		// 503, never a fallback to relational storage.
		ref, err = h.Archive.Insert(ctx, newRoster)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "roster archive unavailable"})
		}
		archiveRef = ref
	} else {
		ref, err = h.RosterRepo.CreateTx(ctx, tx, newRoster)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to persist roster"})
		}
	}
	newRoster.ID = ref

	// One join record per crew member, both kinds. These rows carry
	// cabin availability and are what a roster deletion releases.
	assignments := make([]model.CrewAssignment, 0, len(flightCrew)+len(cabinCrew))
	for _, m := range flightCrew {
		assignments = append(assignments, model.CrewAssignment{
			RosterRef: ref, FlightID: flightID, CrewKind: model.CrewKindFlight, CrewID: m.ID, Duty: m.Role,
		})
	}
	for _, m := range cabinCrew {
		assignments = append(assignments, model.CrewAssignment{
			RosterRef: ref, FlightID: flightID, CrewKind: model.CrewKindCabin, CrewID: m.ID, Duty: m.AttendantType,
		})
	}
	if err := h.AssignmentRepo.CreateBulkTx(ctx, tx, assignments); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record crew assignments"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit roster"})
	}
	committed = true

	invalidateBrowseCache(ctx, h.Cache, h.CachePrefix)

	// Best effort: the publisher logs its own failures.
	_ = queue_publisher.PublishRosterGenerated(ctx, queue.RosterGeneratedEvent{
		RosterID:         newRoster.ID,
		FlightID:         flightID,
		FlightNumber:     flight.FlightNumber,
		RosterName:       newRoster.Name,
		GeneratedBy:      newRoster.GeneratedBy,
		StorageKind:      newRoster.StorageKind,
		FlightCrewCount:  newRoster.Summary.FlightCrewCount,
		CabinCrewCount:   newRoster.Summary.CabinCrewCount,
		PassengerCount:   newRoster.Summary.PassengerCount,
		SeatedPassengers: newRoster.Summary.SeatedPassengers,
		OccupancyRate:    newRoster.Summary.OccupancyRate,
		GeneratedAt:      newRoster.GeneratedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, newRoster)
}

// selectCrew fetches fresh candidate pools and runs both selectors
// with a shared exclusion set so no member is double-booked across the
// two calls.
func (h *RosterHandler) selectCrew(c echo.Context, aircraft *model.AircraftProfile) ([]model.FlightCrewMember, []model.CabinCrewMember, error) {
	ctx := c.Request().Context()
	flightPool := make(map[string][]model.FlightCrewMember, len(roster.FlightCrewRoles))
	for _, role := range roster.FlightCrewRoles {
		members, err := h.FlightCrewRepo.ListByRole(ctx, role)
		if err != nil {
			return nil, nil, err
		}
		flightPool[role] = members
	}
	cabinPool := make(map[string][]model.CabinCrewMember, 3)
	for _, attendantType := range []string{model.AttendantChief, model.AttendantRegular, model.AttendantChef} {
		members, err := h.CabinCrewRepo.ListAvailableByType(ctx, attendantType)
		if err != nil {
			return nil, nil, err
		}
		cabinPool[attendantType] = members
	}
	sel := &roster.Selector{FlightPool: flightPool, CabinPool: cabinPool}
	exclude := roster.NewExclusionSet()
	flightCrew := sel.SelectFlightCrew(aircraft, exclude)
	cabinCrew := sel.SelectCabinCrew(aircraft, exclude)
	return flightCrew, cabinCrew, nil
}

// buildPayload assembles the denormalized snapshot stored with the
// roster.
func buildPayload(flight *model.Flight, aircraft *model.AircraftProfile, flightCrew []model.FlightCrewMember, cabinCrew []model.CabinCrewMember, passengers []model.Passenger) model.RosterPayload {
	payload := model.RosterPayload{
		Flight: model.FlightInfo{
			ID:              flight.ID,
			FlightNumber:    flight.FlightNumber,
			OriginCode:      flight.OriginCode,
			DestinationCode: flight.DestinationCode,
			DepartsAt:       flight.DepartsAt.UTC().Format(time.RFC3339),
			ArrivesAt:       flight.ArrivesAt.UTC().Format(time.RFC3339),
			AircraftModel:   aircraft.ModelName,
			TotalSeats:      aircraft.TotalSeats,
		},
		FlightCrew: make([]model.FlightCrewEntry, 0, len(flightCrew)),
		CabinCrew:  make([]model.CabinCrewEntry, 0, len(cabinCrew)),
		Passengers: make([]model.PassengerEntry, 0, len(passengers)),
	}
	for _, m := range flightCrew {
		payload.FlightCrew = append(payload.FlightCrew, model.FlightCrewEntry{
			ID: m.ID, Name: m.Name, Role: m.Role, SeniorityLevel: m.SeniorityLevel, Languages: m.Languages,
		})
	}
	for _, m := range cabinCrew {
		payload.CabinCrew = append(payload.CabinCrew, model.CabinCrewEntry{
			ID: m.ID, Name: m.Name, AttendantType: m.AttendantType,
		})
	}
	for _, p := range passengers {
		payload.Passengers = append(payload.Passengers, model.PassengerEntry{
			ID: p.ID, Name: p.Name, SeatNumber: p.SeatNumber,
		})
	}
	return payload
}

// GetRoster handles GET /v1/rosters/:id. Relational row ids resolve
// against relational storage, archive document ids against the
// archive; isRelationalID tells the two apart.
func (h *RosterHandler) GetRoster(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	var (
		found *model.Roster
		err   error
	)
	if isRelationalID(id) {
		rid, perr := strconv.ParseUint(id, 10, 64)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid roster id"})
		}
		found, err = h.RosterRepo.GetByID(ctx, rid)
	} else {
		if h.Archive == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "roster not found"})
		}
		found, err = h.Archive.GetByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, repository.ErrRosterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "roster not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, found)
}

// ListFlightRosters handles GET /v1/flights/:id/rosters. It merges
// relational and archived headers, newest first.
func (h *RosterHandler) ListFlightRosters(c echo.Context) error {
	flightID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || flightID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	ctx := c.Request().Context()
	if _, err := h.FlightRepo.GetByID(ctx, flightID); err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	headers, err := h.RosterRepo.ListByFlight(ctx, flightID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if h.Archive != nil {
		archived, err := h.Archive.ListByFlight(ctx, flightID, 100)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "archive error"})
		}
		headers = append(headers, archived...)
	}
	sort.SliceStable(headers, func(i, j int) bool { return headers[i].GeneratedAt.After(headers[j].GeneratedAt) })
	return c.JSON(http.StatusOK, headers)
}

// DeleteRoster handles DELETE /v1/rosters/:id. Deleting a roster also
// deletes its crew assignment rows, which releases the cabin crew it
// held; nothing else about the crew or passengers is touched.
func (h *RosterHandler) DeleteRoster(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	if !isRelationalID(id) && h.Archive == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "roster not found"})
	}

	tx, err := h.FlightRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	archiveMissing := false
	if isRelationalID(id) {
		rid, perr := strconv.ParseUint(id, 10, 64)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid roster id"})
		}
		if err := h.RosterRepo.DeleteTx(ctx, tx, rid); err != nil {
			if errors.Is(err, repository.ErrRosterNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "roster not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	} else {
		if err := h.Archive.Delete(ctx, id); err != nil {
			if !errors.Is(err, repository.ErrRosterNotFound) {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "archive error"})
			}
			// The document may already be gone from an earlier attempt
			// whose commit failed after the archive delete succeeded.
			// The assignment rows must still be releasable, so a missing
			// document is only a 404 when no rows reference it either.
			archiveMissing = true
		}
	}
	released, err := h.AssignmentRepo.DeleteByRosterRefTx(ctx, tx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release crew assignments"})
	}
	if archiveMissing && released == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "roster not found"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit deletion"})
	}
	committed = true

	invalidateBrowseCache(ctx, h.Cache, h.CachePrefix)
	return c.NoContent(http.StatusNoContent)
}
