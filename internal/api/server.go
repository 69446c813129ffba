package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"qaboard/internal/bootstrap/logging"
	"qaboard/internal/metrics"
	"qaboard/internal/usecase/catalog"
	"qaboard/internal/usecase/dashboard"
	"qaboard/internal/usecase/exchange"
)

// Server handles HTTP requests.
type Server struct {
	catalog   *catalog.Service
	dashboard *dashboard.Service
	exchange  *exchange.Service
	exporter  *metrics.Exporter
	addr      string
}

// Config contains server configuration.
type Config struct {
	Catalog   *catalog.Service
	Dashboard *dashboard.Service
	Exchange  *exchange.Service
	Exporter  *metrics.Exporter
	Addr      string
}

func NewServer(cfg Config) *Server {
	return &Server{
		catalog:   cfg.Catalog,
		dashboard: cfg.Dashboard,
		exchange:  cfg.Exchange,
		exporter:  cfg.Exporter,
		addr:      cfg.Addr,
	}
}

// Router builds the full route table.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.metricsMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/dashboard/stats", s.handleDashboardStats)
		r.Get("/dashboard/alerts", s.handleDashboardAlerts)
		r.Get("/dashboard/activity", s.handleDashboardActivity)

		s.mountCatalogRoutes(r)
	})

	return r
}

// Start serves until the context is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info(ctx, "http server listening", addrAttr(s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
