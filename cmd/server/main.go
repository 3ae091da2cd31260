package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/avolair/flight-roster/internal/config"
	"github.com/avolair/flight-roster/internal/database"
	"github.com/avolair/flight-roster/internal/handler"
	"github.com/avolair/flight-roster/internal/middleware"
	"github.com/avolair/flight-roster/internal/queue"
	"github.com/avolair/flight-roster/internal/repository"
	"github.com/avolair/flight-roster/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables response caching and
	// invalidation becomes a no-op.
	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()

	// The document archive is optional too. A configured-but-unreachable
	// Mongo is a warning at startup; requests asking for document storage
	// will then fail with 503 until it comes back.
	mongoClient, err := database.OpenMongo(cfg.MongoURI)
	if err != nil {
		log.Printf("mongo: archive unavailable: %v", err)
	}
	// Assigned only when Mongo is up so the handler sees a nil interface,
	// not a typed nil pointer.
	var archive handler.RosterArchive
	if mongoClient != nil {
		archive = repository.NewRosterArchive(mongoClient, cfg.MongoDB)
	}

	flightRepo := repository.NewFlightRepo(db)
	aircraftRepo := repository.NewAircraftRepo(db)
	flightCrewRepo := repository.NewFlightCrewRepo(db)
	cabinCrewRepo := repository.NewCabinCrewRepo(db)
	passengerRepo := repository.NewPassengerRepo(db)
	assignmentRepo := repository.NewCrewAssignmentRepo(db)
	rosterRepo := repository.NewRosterRepo(db)

	flightHandler := handler.NewFlightHandler(flightRepo, aircraftRepo, passengerRepo)
	rosterHandler := handler.NewRosterHandler(flightRepo, aircraftRepo, flightCrewRepo, cabinCrewRepo,
		passengerRepo, assignmentRepo, rosterRepo, archive, rdb, cacheCfg.Prefix)

	go func() {
		if err := queue.StartRosterConsumer(); err != nil {
			log.Printf("roster-consumer: stopped: %v", err)
		}
	}()

	e := echo.New()
	cacheMW := middleware.NewRedisCache(cacheCfg, rdb)

	router.RegisterRoutes(e)
	router.RegisterBrowse(e, flightHandler, rosterHandler, cacheMW)
	router.RegisterRoster(e, rosterHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
