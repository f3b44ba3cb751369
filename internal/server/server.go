// Package server exposes the cost engine as a read-only JSON API.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/rshade/equipment-cost/internal/estimate"
	"github.com/rshade/equipment-cost/internal/pricing"
	eqmiddleware "github.com/rshade/equipment-cost/internal/server/middleware"
)

// Dependencies are the collaborators the handlers call.
type Dependencies struct {
	Estimator *estimate.Estimator
	Fuels     pricing.FuelPricer
}

type WebAPI struct {
	router  *chi.Mux
	logger  *zerolog.Logger
	server  *http.Server
	config  Config
	metrics *Metrics
}

func NewWebAPI(logger zerolog.Logger, config Config, deps Dependencies) *WebAPI {
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = DefaultShutdownTimeout
	}
	metrics := NewMetrics()
	h := &handler{
		estimator: deps.Estimator,
		fuels:     deps.Fuels,
		metrics:   metrics,
	}

	router := chi.NewRouter()

	router.Use(eqmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)
	router.Use(eqmiddleware.CORS(config.AllowedOrigins, config.AllowAllOrigins))
	router.Use(metrics.Instrument)

	router.Get("/healthz", h.health)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/estimate", h.estimate)
		r.Post("/schedule", h.schedule)
		r.Get("/classes", h.classes)
		r.Get("/fuels", h.fuelTable)
	})

	return &WebAPI{
		router:  router,
		logger:  &logger,
		config:  config,
		metrics: metrics,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Handler returns the routed handler.
func (w *WebAPI) Handler() http.Handler {
	return w.router
}

// Start serves until ctx is canceled or the process receives SIGINT or
// SIGTERM, then shuts down within the configured timeout.
func (w *WebAPI) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", w.server.Addr)
	if err != nil {
		return err
	}
	return w.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (w *WebAPI) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		w.logger.Info().Str("addr", ln.Addr().String()).Msg("starting server")
		serverErrors <- w.server.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.config.ShutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(shutdownCtx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}
		return err
	}
}
