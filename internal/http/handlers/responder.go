package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/http/middleware"
	"github.com/preston-bernstein/travel-reservations-service/internal/http/requestutil"
	"github.com/preston-bernstein/travel-reservations-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a service failure onto its HTTP status.
// Internal causes are never echoed to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	writeError(w, r, statusForKind(domain.KindOf(err)), domain.PublicMessage(err), loggerFromContext(r, logger))
}

func statusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindRoomNotFound, domain.KindReservationNotFound:
		return http.StatusNotFound
	case domain.KindMissingField,
		domain.KindInvalidJSON,
		domain.KindNoUpdatableFields,
		domain.KindEmptyGuestName,
		domain.KindRoomUnavailable,
		domain.KindInvalidDateFormat,
		domain.KindInvalidDateOrder:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
