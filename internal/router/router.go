package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/avolair/flight-roster/internal/handler"
	"github.com/avolair/flight-roster/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterBrowse registers the unauthenticated read endpoints for flights,
// aircraft and rosters. The cache middleware is applied per-route so that
// mutating endpoints never pass through it.
func RegisterBrowse(e *echo.Echo, f *handler.FlightHandler, r *handler.RosterHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/flights", f.ListFlights, cache)
	e.GET("/v1/flights/:id", f.GetFlight, cache)
	// Passenger manifest for a flight, including current seat numbers.
	e.GET("/v1/flights/:id/passengers", f.ListFlightPassengers, cache)
	e.GET("/v1/aircraft", f.ListAircraft, cache)

	// Roster reads resolve against the relational store or the archive
	// depending on the shape of the id.
	e.GET("/v1/rosters/:id", r.GetRoster, cache)
	e.GET("/v1/flights/:id/rosters", r.ListFlightRosters, cache)
}

// RegisterRoster registers the authenticated roster mutation endpoints.
// Generation is open to dispatchers and admins; deletion is admin-only
// because it also releases the roster's cabin crew back into the pool.
func RegisterRoster(e *echo.Echo, r *handler.RosterHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("DISPATCHER", "ADMIN"))

	g.POST("/flights/:id/roster", r.GenerateRoster)
	g.DELETE("/rosters/:id", r.DeleteRoster, middleware.RequireRole("ADMIN"))
}
