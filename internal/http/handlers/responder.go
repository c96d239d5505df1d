package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"nba-roster-service/internal/domain"
	"nba-roster-service/internal/http/middleware"
	"nba-roster-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeDomainError maps catalog errors onto HTTP statuses: a bad property is
// the caller's fault, an unreachable source is the backend's.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, domain.ErrUnknownProperty):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, domain.ErrSourceUnavailable):
		writeError(w, r, http.StatusBadGateway, "player source unavailable", logger)
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	if logger := logging.FromContext(r.Context()); logger != nil {
		return logger
	}
	return fallback
}
