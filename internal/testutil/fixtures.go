package testutil

import (
	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
)

// SeedReservationID is the id of the reservation in SeedSnapshot.
const SeedReservationID = "test-reservation-1"

// SeedRooms returns three rooms with availability 5, 1 and 0.
func SeedRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, Name: "Standard Room", Type: "standard", Price: 100, Availability: 5},
		{ID: 2, Name: "Deluxe Room", Type: "deluxe", Price: 150, Availability: 1},
		{ID: 3, Name: "Suite", Type: "suite", Price: 250, Availability: 0},
	}
}

// SampleReservation returns a reservation fixture against room 1.
func SampleReservation(id string) domain.Reservation {
	return domain.Reservation{
		ID:        id,
		RoomID:    1,
		GuestName: "Test Guest",
		CheckIn:   "2025-12-01",
		CheckOut:  "2025-12-05",
		CreatedAt: "2025-11-10T10:00:00",
	}
}

// SeedSnapshot returns SeedRooms plus one existing reservation.
func SeedSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Rooms:        SeedRooms(),
		Reservations: []domain.Reservation{SampleReservation(SeedReservationID)},
	}
}

// Ptr returns a pointer to v; handy for building request fixtures.
func Ptr[T any](v T) *T {
	return &v
}

// CreateRequest builds a fully populated create request.
func CreateRequest(roomID int, guest, checkIn, checkOut string) domain.CreateRequest {
	return domain.CreateRequest{
		RoomID:    Ptr(roomID),
		GuestName: Ptr(guest),
		CheckIn:   Ptr(checkIn),
		CheckOut:  Ptr(checkOut),
	}
}
