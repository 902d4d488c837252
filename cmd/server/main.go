// Entry point: loads configuration, opens the database and Redis, wires
// repositories, services and handlers, starts the queue consumer and
// serves HTTP.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/config"
	"github.com/iliyamo/hotel-front-desk/internal/database"
	"github.com/iliyamo/hotel-front-desk/internal/handler"
	"github.com/iliyamo/hotel-front-desk/internal/middleware"
	"github.com/iliyamo/hotel-front-desk/internal/queue"
	"github.com/iliyamo/hotel-front-desk/internal/repository"
	"github.com/iliyamo/hotel-front-desk/internal/router"
	"github.com/iliyamo/hotel-front-desk/internal/service"
)

func main() {
	// A .env file is a convenience for local runs; absence is fine.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("migrate: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	rooms := repository.NewRoomRepo(db)
	guests := repository.NewGuestRepo(db)
	reservations := repository.NewReservationRepo(db)
	invoices := repository.NewInvoiceRepo(db)
	settings := repository.NewSettingsRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	billing := service.NewBilling(invoices, reservations)
	invalidator := middleware.NewInvalidator(cacheCfg, rdb)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(middleware.NewTokenBucket(rlCfg, rdb))

	router.Register(e, router.Deps{
		JWTSecret:    cfg.JWTSecret,
		Cache:        middleware.NewRedisCache(cacheCfg, rdb),
		Auth:         handler.NewAuthHandler(cfg, users, tokens),
		Rooms:        handler.NewRoomHandler(rooms, invalidator),
		Guests:       handler.NewGuestHandler(guests, reservations, invalidator),
		Reservations: handler.NewReservationHandler(reservations, guests, rooms, invalidator),
		Invoices:     handler.NewInvoiceHandler(invoices, reservations, invalidator),
		Billing:      handler.NewBillingHandler(billing, reservations, invoices, settings, invalidator),
		Settings:     handler.NewSettingsHandler(settings, invalidator),
		Dashboard:    handler.NewDashboardHandler(rooms, guests, reservations),
		Reports:      handler.NewReportsHandler(reservations, settings),
	})

	// Audit log consumer; runs its own reconnect loop for the lifetime of
	// the process.
	go func() {
		if err := queue.StartConsumer(); err != nil {
			log.Printf("queue consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
