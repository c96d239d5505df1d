// Package server assembles the catalog, roster service, telemetry and HTTP
// stack, and owns the process lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"nba-roster-service/internal/app/roster"
	"nba-roster-service/internal/config"
	httpserver "nba-roster-service/internal/http"
	"nba-roster-service/internal/http/handlers"
	"nba-roster-service/internal/http/middleware"
	"nba-roster-service/internal/logging"
	"nba-roster-service/internal/metrics"
	"nba-roster-service/internal/source/csvsource"
	"nba-roster-service/internal/store"
	"nba-roster-service/internal/store/mysqlstore"
)

var (
	metricsSetup = metrics.Setup
	openMySQL    = func(ctx context.Context, cfg mysqlstore.Config) (roster.Catalog, error) {
		return mysqlstore.Open(ctx, cfg)
	}
)

type Server struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Recorder
	catalog     roster.Catalog
	service     *roster.Service
	httpServer  httpServer
	metricsStop func(context.Context) error
}

// New builds a fully wired server: catalog per the configured source,
// telemetry, and the HTTP stack.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, promHandler, metricsStop := buildMetrics(ctx, cfg, logger)

	catalog, err := buildCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	svc := roster.NewService(catalog, recorder)
	handler := handlers.NewHandler(svc, logger)
	router := httpserver.NewRouter(handler, cfg.CORSOrigins, promHandler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		catalog:     catalog,
		service:     svc,
		httpServer:  netHTTPServer{srv: srv},
		metricsStop: metricsStop,
	}, nil
}

func buildCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) (roster.Catalog, error) {
	switch cfg.Source {
	case config.SourceMySQL:
		catalog, err := openMySQL(ctx, mysqlstore.Config{
			Host:           cfg.Database.Host,
			Port:           cfg.Database.Port,
			User:           cfg.Database.User,
			Password:       cfg.Database.Password,
			DBName:         cfg.Database.Name,
			MigrationsPath: cfg.Database.MigrationsPath,
		})
		if err != nil {
			return nil, fmt.Errorf("mysql catalog: %w", err)
		}
		if logger != nil {
			logger.Info("using mysql catalog",
				slog.String("host", cfg.Database.Host),
				slog.String("database", cfg.Database.Name),
			)
		}
		return catalog, nil
	case config.SourceCSV:
		players, err := csvsource.Load(cfg.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("seed catalog from %s: %w", cfg.CSVPath, err)
		}
		memoryStore := store.NewMemoryStore()
		memoryStore.SetPlayers(players)
		if logger != nil {
			logger.Info("seeded in-memory catalog",
				slog.String("path", cfg.CSVPath),
				slog.Int("players", len(players)),
			)
		}
		return memoryStore, nil
	default:
		return nil, fmt.Errorf("unknown player source %q", cfg.Source)
	}
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	rec, handler, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

// Run starts the HTTP server and waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if err := s.catalog.Close(); err != nil {
		logging.Warn(s.logger, "catalog close failed", "error", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
