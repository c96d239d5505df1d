// Package handlers wires the dashboard HTTP routes to the roster service.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"nba-roster-service/internal/app/roster"
	"nba-roster-service/internal/charts"
	"nba-roster-service/internal/export"
	"nba-roster-service/internal/logging"
	"nba-roster-service/internal/view"
)

var (
	errInvalidOrder = errors.New("invalid order (expected asc or desc)")
	errInvalidPage  = errors.New("invalid page (expected a positive integer)")
	errInvalidSort  = errors.New("invalid sort key")
)

// Handler wires HTTP routes to the roster service.
type Handler struct {
	svc    *roster.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *roster.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := h.svc.Ready(r.Context()); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Stats returns the per-bucket player counts for the property in the path.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	property, ok := pathSuffix(r.URL.Path, "/api/players/stats/")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "missing property", h.logger)
		return
	}

	series, err := h.svc.Stats(r.Context(), property)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logger.Info("served stats",
		slog.String(logging.FieldProperty, property),
		slog.Int(logging.FieldCount, series.Total()),
	)
	writeJSON(w, http.StatusOK, series, h.logger)
}

// Filter returns the players belonging to one bucket.
func (h *Handler) Filter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	q := r.URL.Query()
	property := q.Get("property")
	if property == "" {
		writeError(w, r, http.StatusBadRequest, "missing property", h.logger)
		return
	}
	label := q.Get("value")
	team := q.Get("team")

	players, err := h.svc.Filtered(r.Context(), property, label, team)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logger.Info("served filter",
		slog.String(logging.FieldProperty, property),
		slog.String(logging.FieldLabel, label),
		slog.String(logging.FieldTeam, team),
		slog.Int(logging.FieldCount, len(players)),
	)
	writeJSON(w, http.StatusOK, players, h.logger)
}

// All returns the full roster.
func (h *Handler) All(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	players, err := h.svc.All(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, players, h.logger)
}

// View returns a searched, sorted and paginated slice of the roster.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	opts, err := viewOptions(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	page, err := h.svc.Page(r.Context(), opts)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, page, h.logger)
}

// Export streams the roster as an XLSX workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	players, err := h.svc.All(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="players.xlsx"`)
	if err := export.WriteXLSX(w, players); err != nil {
		loggerFromContext(r, h.logger).Error("failed to write workbook", "err", err)
	}
}

// Teams returns the distinct team names.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	teams, err := h.svc.Teams(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, teams, h.logger)
}

// TeamDetails returns the per-position rollup for the team in the path.
func (h *Handler) TeamDetails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	team, ok := pathSuffix(r.URL.Path, "/api/teams/details/")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "missing team", h.logger)
		return
	}

	details, err := h.svc.TeamDetails(r.Context(), team)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, details, h.logger)
}

// Chart renders the distribution for the property in the path as HTML.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	property, ok := pathSuffix(r.URL.Path, "/charts/")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "missing property", h.logger)
		return
	}

	series, err := h.svc.Stats(r.Context(), property)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.Render(w, series); err != nil {
		loggerFromContext(r, h.logger).Error("failed to render chart", "err", err)
	}
}

// pathSuffix extracts and unescapes the single path segment after prefix.
func pathSuffix(path, prefix string) (string, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || raw == path || strings.Contains(raw, "/") {
		return "", false
	}
	value, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func viewOptions(q url.Values) (view.Options, error) {
	opts := view.Options{
		Search:  q.Get("q"),
		SortKey: q.Get("sort"),
	}

	switch strings.ToLower(q.Get("order")) {
	case "", "asc":
		opts.SortOrder = view.Asc
	case "desc":
		opts.SortOrder = view.Desc
	default:
		return view.Options{}, errInvalidOrder
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return view.Options{}, errInvalidPage
		}
		opts.Page = page
	}

	if opts.SortKey != "" && !view.ValidSortKey(opts.SortKey) {
		return view.Options{}, errInvalidSort
	}
	return opts, nil
}
