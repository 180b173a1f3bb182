package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/travel-reservations-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a chi router.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	r := chi.NewRouter()
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)

	r.Get("/api/rooms", h.ListRooms)
	r.Get("/api/rooms/search", h.SearchRooms)
	r.Get("/api/rooms/{"+handlers.IDParam+"}", h.GetRoom)

	r.Get("/api/reservations", h.ListReservations)
	r.Post("/api/reservations", h.CreateReservation)
	r.Get("/api/reservations/{"+handlers.IDParam+"}", h.GetReservation)
	r.Put("/api/reservations/{"+handlers.IDParam+"}", h.UpdateReservation)
	r.Delete("/api/reservations/{"+handlers.IDParam+"}", h.CancelReservation)

	return r
}
