// Package apiserver wires the HTTP boundary of the rackprep service.
package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/rackops/rackprep/internal/config"
	handlers "github.com/rackops/rackprep/internal/handlers/v1alpha1"
	"github.com/rackops/rackprep/internal/service"
	"github.com/rackops/rackprep/pkg/metrics"
	"github.com/rackops/rackprep/pkg/middleware"
)

const gracefulShutdownTimeout = 5 * time.Second

type Server struct {
	cfg      *config.Config
	listener net.Listener
}

// New returns a new instance of a rackprep API server.
func New(cfg *config.Config, listener net.Listener) *Server {
	return &Server{
		cfg:      cfg,
		listener: listener,
	}
}

// newRouter builds the full middleware chain and route table. Split out of
// Run so tests can exercise the boundary without a listener.
func newRouter(cfg *config.Config, registerMetrics bool) http.Handler {
	router := chi.NewRouter()

	if registerMetrics {
		metricMiddleware := metrics.NewMiddleware("api_server")
		metricMiddleware.MustRegisterDefault()
		router.Use(metricMiddleware.Handler)
	}

	router.Use(
		// Fixed, permissive cross-origin policy: the same static headers are
		// attached to every response, and preflight requests are answered
		// here without reaching the handlers.
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			MaxAge:         300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
		maxBytes(cfg.Service.MaxRequestSize),
	)

	h := handlers.NewServiceHandler(service.NewEstimationService())

	router.MethodNotAllowed(handlers.WriteMethodNotAllowed)
	router.NotFound(handlers.WriteNotFound)

	router.Get("/health", h.Health)
	router.Get("/ready", h.Ready)
	router.Post("/api/v1/estimate", h.CalculateRackingEstimate)

	return router
}

// maxBytes caps the request body size to keep oversized batches from being
// buffered by the JSON decoder.
func maxBytes(n int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: newRouter(s.cfg, true)}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
