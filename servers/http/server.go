package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"

	httpAdapter "github.com/gruzdev-dev/codex-employees/adapters/http"
	"github.com/gruzdev-dev/codex-employees/configs"
	middleware "github.com/gruzdev-dev/codex-employees/middleware/http"
	"github.com/gruzdev-dev/codex-employees/pkg/logger"
	"github.com/gruzdev-dev/codex-employees/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	cfg    *configs.Config
	log    *slog.Logger
	router *mux.Router
}

func NewServer(
	cfg *configs.Config,
	handler *httpAdapter.Handler,
	log *slog.Logger,
	m *metrics.Metrics,
	reg *prometheus.Registry,
) *Server {
	chain := []mux.MiddlewareFunc{
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Metrics(m),
		middleware.RateLimit(middleware.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)),
	}

	router := mux.NewRouter()
	router.Use(chain...)
	// mux skips Use middleware when no route matches.
	router.NotFoundHandler = wrap(nethttp.NotFoundHandler(), chain)
	router.MethodNotAllowedHandler = wrap(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusMethodNotAllowed)
	}), chain)

	router.HandleFunc("/healthz", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	router.HandleFunc("/readyz", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})).Methods("GET")

	handler.RegisterRoutes(router)

	return &Server{
		cfg:    cfg,
		log:    log.With(slog.String("op", "servers.http")),
		router: router,
	}
}

func wrap(h nethttp.Handler, chain []mux.MiddlewareFunc) nethttp.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i].Middleware(h)
	}
	return h
}

// Handler exposes the fully wired router.
func (s *Server) Handler() nethttp.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	srv := &nethttp.Server{
		Addr:    s.cfg.HTTPAddr(),
		Handler: s.router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("starting http server", slog.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("http server forced to shutdown", logger.Err(err))
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	s.log.Info("http server exited")
	return nil
}
