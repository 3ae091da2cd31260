package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avolair/flight-roster/internal/model"
	"github.com/avolair/flight-roster/internal/repository"
)

// FlightHandler exposes read-only browse endpoints for flights,
// passengers and aircraft profiles. These are plumbing around the
// roster engine; all writes to these entities happen in external
// systems.
type FlightHandler struct {
	FlightRepo    *repository.FlightRepo
	AircraftRepo  *repository.AircraftRepo
	PassengerRepo *repository.PassengerRepo
}

// NewFlightHandler constructs a FlightHandler and panics if any
// dependency is nil.
func NewFlightHandler(flightRepo *repository.FlightRepo, aircraftRepo *repository.AircraftRepo, passengerRepo *repository.PassengerRepo) *FlightHandler {
	if flightRepo == nil || aircraftRepo == nil || passengerRepo == nil {
		panic("nil repository passed to NewFlightHandler")
	}
	return &FlightHandler{FlightRepo: flightRepo, AircraftRepo: aircraftRepo, PassengerRepo: passengerRepo}
}

type flightResponse struct {
	ID              uint64  `json:"id"`
	FlightNumber    string  `json:"flight_number"`
	OriginCode      string  `json:"origin_code"`
	DestinationCode string  `json:"destination_code"`
	DepartsAt       string  `json:"departs_at"`
	ArrivesAt       string  `json:"arrives_at"`
	AircraftID      *uint64 `json:"aircraft_id,omitempty"`
}

type aircraftResponse struct {
	ID         uint64 `json:"id"`
	ModelName  string `json:"model_name"`
	TotalSeats uint32 `json:"total_seats"`
	MaxCrew    uint32 `json:"max_crew"`
	HasLayout  bool   `json:"has_seating_layout"`
}

type passengerResponse struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	SeatNumber *string `json:"seat_number"`
}

func toFlightResponse(f model.Flight) flightResponse {
	return flightResponse{
		ID:              f.ID,
		FlightNumber:    f.FlightNumber,
		OriginCode:      f.OriginCode,
		DestinationCode: f.DestinationCode,
		DepartsAt:       f.DepartsAt.UTC().Format(time.RFC3339),
		ArrivesAt:       f.ArrivesAt.UTC().Format(time.RFC3339),
		AircraftID:      f.AircraftID,
	}
}

// ListFlights handles GET /v1/flights.
func (h *FlightHandler) ListFlights(c echo.Context) error {
	flights, err := h.FlightRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]flightResponse, 0, len(flights))
	for _, f := range flights {
		out = append(out, toFlightResponse(f))
	}
	return c.JSON(http.StatusOK, out)
}

// GetFlight handles GET /v1/flights/:id. The assigned aircraft profile
// is embedded when present.
func (h *FlightHandler) GetFlight(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	ctx := c.Request().Context()
	flight, err := h.FlightRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	resp := struct {
		flightResponse
		Aircraft *aircraftResponse `json:"aircraft,omitempty"`
	}{flightResponse: toFlightResponse(*flight)}
	if flight.AircraftID != nil {
		if aircraft, err := h.AircraftRepo.GetByID(ctx, *flight.AircraftID); err == nil {
			resp.Aircraft = &aircraftResponse{
				ID:         aircraft.ID,
				ModelName:  aircraft.ModelName,
				TotalSeats: aircraft.TotalSeats,
				MaxCrew:    aircraft.MaxCrew,
				HasLayout:  aircraft.Layout.Known,
			}
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// ListFlightPassengers handles GET /v1/flights/:id/passengers.
func (h *FlightHandler) ListFlightPassengers(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	ctx := c.Request().Context()
	if _, err := h.FlightRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFlightNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	passengers, err := h.PassengerRepo.ListByFlight(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]passengerResponse, 0, len(passengers))
	for _, p := range passengers {
		out = append(out, passengerResponse{ID: p.ID, Name: p.Name, SeatNumber: p.SeatNumber})
	}
	return c.JSON(http.StatusOK, out)
}

// ListAircraft handles GET /v1/aircraft.
func (h *FlightHandler) ListAircraft(c echo.Context) error {
	profiles, err := h.AircraftRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]aircraftResponse, 0, len(profiles))
	for _, a := range profiles {
		out = append(out, aircraftResponse{
			ID: a.ID, ModelName: a.ModelName, TotalSeats: a.TotalSeats, MaxCrew: a.MaxCrew, HasLayout: a.Layout.Known,
		})
	}
	return c.JSON(http.StatusOK, out)
}
