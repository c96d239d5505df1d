package http

import (
	nethttp "net/http"

	"github.com/rs/cors"

	"nba-roster-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux and wraps them with CORS.
// Empty origins allow any, matching the dashboard's local dev setup. The
// metrics handler is mounted at /metrics when telemetry is enabled.
func NewRouter(handler *handlers.Handler, origins []string, metricsHandler nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/players/stats/", handler.Stats)
	mux.HandleFunc("/api/players/filter", handler.Filter)
	mux.HandleFunc("/api/players/all", handler.All)
	mux.HandleFunc("/api/players/view", handler.View)
	mux.HandleFunc("/api/players/export", handler.Export)
	mux.HandleFunc("/api/teams/list", handler.Teams)
	mux.HandleFunc("/api/teams/details/", handler.TeamDetails)
	mux.HandleFunc("/charts/", handler.Chart)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})
	return c.Handler(mux)
}
