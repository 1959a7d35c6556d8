package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/refnav/internal/content"
	"github.com/ziadkadry99/refnav/internal/logger"
	metric "github.com/ziadkadry99/refnav/internal/metric"
	"github.com/ziadkadry99/refnav/internal/refnav"
	"github.com/ziadkadry99/refnav/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port            int
	BasePath        string
	AssetsDir       string // optional directory served under /img
	Theme           refnav.Theme
	AllowAll        bool // allow all CORS origins (dev mode)
	ShutdownTimeout time.Duration
}

// Server renders reference pages and sidebar data on demand.
type Server struct {
	cfg      Config
	catalog  *content.Catalog
	renderer *refnav.Renderer
	pages    *site.Pages
	metrics  *metric.Recorder
	log      logger.Logger
	router   chi.Router
}

// New creates a server with all dependencies.
func New(cfg Config, catalog *content.Catalog, renderer *refnav.Renderer, pages *site.Pages, metrics *metric.Recorder, log logger.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		catalog:  catalog,
		renderer: renderer,
		pages:    pages,
		metrics:  metrics,
		log:      log,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLog(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", metric.HandlerFor(s.metrics.Registry))

	ref := chi.NewRouter()
	ref.Get("/", s.handleHome)
	ref.Get("/style.css", s.handleAsset("text/css; charset=utf-8", site.StyleSheet))
	ref.Get("/script.js", s.handleAsset("application/javascript", site.Script))
	if s.cfg.AssetsDir != "" {
		ref.Handle("/img/*", http.StripPrefix(s.cfg.BasePath+"/img/", http.FileServer(http.Dir(s.cfg.AssetsDir))))
	}
	ref.Get("/reference/{lib}", s.handlePage)
	ref.Get("/reference/{lib}/*", s.handlePage)
	ref.Get("/api/sidebar/{lib}", s.handleSidebar)

	if s.cfg.BasePath == "" {
		r.Mount("/", ref)
	} else {
		r.Mount(s.cfg.BasePath, ref)
	}

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on the configured port and blocks until ctx is cancelled or
// the server fails. Cancellation triggers a graceful shutdown bounded by
// ShutdownTimeout.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.log.Info("refnav server listening", logger.String("addr", listener.Addr().String()))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s.log.Info("shutting down server", logger.Duration("grace_period", timeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server shutdown error", logger.Error(err))
			return err
		}
		return nil
	})

	return g.Wait()
}
