package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/travel-reservations-service/internal/app/reservations"
	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
)

// IDParam is the route parameter holding a room or reservation id.
const IDParam = "id"

const cancelledMessage = "Reservation cancelled successfully"

// Handler wires HTTP routes to the reservation service.
type Handler struct {
	svc    *reservations.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *reservations.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes called with an unsupported method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// ListRooms returns the full catalog.
func (h *Handler) ListRooms(w nethttp.ResponseWriter, r *nethttp.Request) {
	rooms, err := h.svc.ListRooms(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, rooms, h.logger)
}

// GetRoom returns one room. Non-integer ids cannot match a room.
func (h *Handler) GetRoom(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, IDParam))
	if err != nil {
		writeServiceError(w, r, domain.ErrRoomNotFound, h.logger)
		return
	}
	room, err := h.svc.GetRoom(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, room, h.logger)
}

// SearchRooms filters rooms by ?minAvailability= and ?maxPrice=.
func (h *Handler) SearchRooms(w nethttp.ResponseWriter, r *nethttp.Request) {
	criteria, err := parseSearchCriteria(r)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	result, err := h.svc.SearchAvailableRooms(r.Context(), criteria)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, result, h.logger)
}

// ListReservations returns every active reservation.
func (h *Handler) ListReservations(w nethttp.ResponseWriter, r *nethttp.Request) {
	list, err := h.svc.ListReservations(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, list, h.logger)
}

// GetReservation returns one reservation.
func (h *Handler) GetReservation(w nethttp.ResponseWriter, r *nethttp.Request) {
	res, err := h.svc.GetReservation(r.Context(), chi.URLParam(r, IDParam))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// CreateReservation books a room and answers 201 with the new reservation.
func (h *Handler) CreateReservation(w nethttp.ResponseWriter, r *nethttp.Request) {
	req, err := decodeCreateRequest(w, r)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	res, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, res, h.logger)
}

// UpdateReservation applies a partial update.
func (h *Handler) UpdateReservation(w nethttp.ResponseWriter, r *nethttp.Request) {
	req, err := decodeUpdateRequest(w, r)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	res, err := h.svc.Update(r.Context(), chi.URLParam(r, IDParam), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// CancelReservation removes a reservation.
func (h *Handler) CancelReservation(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := h.svc.Cancel(r.Context(), chi.URLParam(r, IDParam)); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"message": cancelledMessage}, h.logger)
}

const (
	queryMinAvailability = "minAvailability"
	queryMaxPrice        = "maxPrice"
)

func parseSearchCriteria(r *nethttp.Request) (domain.SearchCriteria, error) {
	criteria := domain.DefaultSearchCriteria()
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get(queryMinAvailability)); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, domain.InvalidValue(queryMinAvailability)
		}
		criteria.MinAvailability = float64(v)
	}
	if raw := strings.TrimSpace(q.Get(queryMaxPrice)); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, domain.InvalidValue(queryMaxPrice)
		}
		criteria.MaxPrice = v
	}
	return criteria, nil
}
