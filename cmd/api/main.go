package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kabirm/safarnama/internal/api"
	"github.com/kabirm/safarnama/internal/catalog"
	"github.com/kabirm/safarnama/internal/middleware"
	"github.com/kabirm/safarnama/internal/payment"
	"github.com/kabirm/safarnama/internal/planner"
	"github.com/kabirm/safarnama/internal/ports"
	"github.com/kabirm/safarnama/internal/repository"
	"github.com/kabirm/safarnama/internal/service"
	"github.com/kabirm/safarnama/internal/utils"
	"github.com/kabirm/safarnama/internal/validator"
	"github.com/kabirm/safarnama/pkg/config"
	"github.com/kabirm/safarnama/pkg/health"
	"github.com/kabirm/safarnama/pkg/logger"
)

type App struct {
	config *config.Config
	server *http.Server
	db     *pgxpool.Pool
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if a.config.Storage.Driver == config.StoragePostgres {
		if err := a.setupDatabase(ctx); err != nil {
			return fmt.Errorf("database setup failed: %w", err)
		}
	}

	if err := a.setupServer(); err != nil {
		return fmt.Errorf("server setup failed: %w", err)
	}

	return nil
}

func (a *App) setupDatabase(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	return nil
}

func (a *App) setupServer() error {
	services := a.setupServices()
	router := a.setupRouter(services)

	a.server = &http.Server{
		Addr:         a.config.Server.Address,
		Handler:      router,
		WriteTimeout: a.config.Server.WriteTimeout,
		ReadTimeout:  a.config.Server.ReadTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
	}

	return nil
}

type Services struct {
	TripService    ports.TripService
	BookingService ports.BookingService
	Catalog        ports.DestinationCatalog
}

func (a *App) setupServices() Services {
	var repo ports.BookingRepository
	if a.db != nil {
		repo = repository.NewPostgresBookingRepository(a.db)
	} else {
		repo = repository.NewMemoryBookingRepository()
	}

	v := validator.NewCustomValidator()
	ids := service.UUIDGenerator{}
	gateway := payment.NewInstantGateway()

	return Services{
		TripService:    service.NewTripService(v, planner.NewTemplateStrategy(), ids),
		BookingService: service.NewBookingService(repo, gateway, ids, v, a.config.Planner.Currency),
		Catalog:        catalog.NewStaticCatalog(),
	}
}

func (a *App) setupRouter(services Services) http.Handler {
	router := http.NewServeMux()
	secret := a.config.Auth.JWTSecret

	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAuth(secret, next)
	}
	jsonBody := func(next http.HandlerFunc) http.HandlerFunc {
		return utils.AllowedContentTypes(next, "application/json")
	}

	router.HandleFunc("GET /v1/health", health.HealthGet())

	router.HandleFunc("POST /v1/trips/plan", jsonBody(api.PlanTripHandler(services.TripService)))
	router.HandleFunc("GET /v1/trips/user/{id}", api.UserTripsHandler(services.TripService))
	router.HandleFunc("POST /v1/trips/{id}/book", api.BookTripHandler(services.TripService))
	router.HandleFunc("GET /v1/trips/{id}", api.GetTripHandler(services.TripService))

	router.HandleFunc("POST /v1/bookings", authed(jsonBody(api.CreateBookingHandler(services.BookingService))))
	router.HandleFunc("GET /v1/bookings/trip/{tripId}", authed(api.TripBookingsHandler(services.BookingService)))
	router.HandleFunc("GET /v1/bookings/{id}", authed(api.GetBookingHandler(services.BookingService)))
	router.HandleFunc("POST /v1/bookings/{id}/cancel", authed(api.CancelBookingHandler(services.BookingService)))

	router.HandleFunc("GET /v1/destinations/popular", api.PopularDestinationsHandler(services.Catalog))
	router.HandleFunc("POST /v1/destinations/search", jsonBody(api.SearchDestinationsHandler(services.Catalog)))
	router.HandleFunc("GET /v1/destinations/{id}/activities", api.DestinationActivitiesHandler(services.Catalog))
	router.HandleFunc("GET /v1/destinations/{id}", api.GetDestinationHandler(services.Catalog))

	router.HandleFunc("GET /v1/users/me", authed(api.MeHandler()))

	return router
}

func (a *App) Run(ctx context.Context) error {
	log := logger.GetLogger()
	serverErrors := make(chan error, 1)

	go func() {
		log.Infow("starting server", "address", a.server.Addr, "storage", a.config.Storage.Driver)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
		log.Info("starting graceful shutdown")
		return a.Shutdown(ctx)
	case <-ctx.Done():
		return a.Shutdown(ctx)
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if a.db != nil {
		a.db.Close()
	}

	return nil
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	app := NewApp(cfg)
	if err := app.Initialize(ctx); err != nil {
		log.Fatalw("failed to initialize application", "error", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalw("application error", "error", err)
	}
}
