package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"taratrip/internal/config"
	"taratrip/internal/hotels"
	"taratrip/internal/http-server/handlers/booking/createBooking"
	"taratrip/internal/http-server/handlers/booking/deleteBooking"
	"taratrip/internal/http-server/handlers/booking/listBookings"
	"taratrip/internal/http-server/handlers/booking/updateBooking"
	"taratrip/internal/http-server/handlers/checkout/createSession"
	"taratrip/internal/http-server/handlers/confirmation"
	"taratrip/internal/http-server/handlers/hotels/listLocations"
	"taratrip/internal/http-server/handlers/hotels/searchHotels"
	"taratrip/internal/http-server/middleware/mwlogger"
	"taratrip/internal/lib/logger/handlers/slogpretty"
	"taratrip/internal/lib/logger/sl"
	"taratrip/internal/payment"
	"taratrip/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting tara-trip", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	cache := hotels.NewSearchCache(&cfg.Redis, log)
	resolver := hotels.NewResolver(cfg.HotelAPI.DefaultLocation)
	hotelClient := hotels.NewClient(&cfg.HotelAPI, resolver, cache, log)

	gateway := payment.NewGateway(&cfg.Stripe)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Get("/api/hotels", searchHotels.New(log, hotelClient))
	router.Get("/api/locations", listLocations.New(log))

	router.Get("/api/bookings", listBookings.New(log, storage))
	router.Post("/api/bookings", createBooking.New(log, storage))
	router.Put("/api/bookings", updateBooking.New(log, storage))
	router.Delete("/api/bookings", deleteBooking.New(log, storage))

	router.Post("/api/checkout", createSession.New(log, gateway))
	router.Get("/thank-you", confirmation.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = cache.Close(); err != nil {
		log.Error("failed to close redis connection", sl.Err(err))
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
