// Package validation holds the side-effect-free checks applied before any
// reservation mutation. Every check returns nil or a *domain.Error.
package validation

import (
	"strings"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/timeutil"
)

// Create-path fields in the order they are reported when absent.
const (
	FieldRoomID    = "roomId"
	FieldGuestName = "guestName"
	FieldCheckIn   = "checkIn"
	FieldCheckOut  = "checkOut"
)

// RequireCreateFields reports the first absent create field.
func RequireCreateFields(req domain.CreateRequest) *domain.Error {
	switch {
	case req.RoomID == nil:
		return domain.MissingField(FieldRoomID)
	case req.GuestName == nil:
		return domain.MissingField(FieldGuestName)
	case req.CheckIn == nil:
		return domain.MissingField(FieldCheckIn)
	case req.CheckOut == nil:
		return domain.MissingField(FieldCheckOut)
	}
	return nil
}

// RequireUpdateFields fails when no recognized field was supplied.
func RequireUpdateFields(req domain.UpdateRequest) *domain.Error {
	if req.Empty() {
		return domain.ErrNoUpdatableFields
	}
	return nil
}

// GuestName trims surrounding whitespace and rejects blank names.
func GuestName(raw string) (string, *domain.Error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domain.ErrEmptyGuestName
	}
	return name, nil
}

// DateRange parses both dates and requires checkOut strictly after checkIn.
// Format failures are reported before ordering failures.
func DateRange(checkIn, checkOut string) *domain.Error {
	in, err := timeutil.ParseDate(checkIn)
	if err != nil {
		return domain.ErrInvalidDateFormat
	}
	out, err := timeutil.ParseDate(checkOut)
	if err != nil {
		return domain.ErrInvalidDateFormat
	}
	if !out.After(in) {
		return domain.ErrInvalidDateOrder
	}
	return nil
}

// FindRoom returns the index of the room with the given id.
func FindRoom(rooms []domain.Room, id int) (int, *domain.Error) {
	for i := range rooms {
		if rooms[i].ID == id {
			return i, nil
		}
	}
	return -1, domain.ErrRoomNotFound
}

// RoomBookable requires at least one free unit.
func RoomBookable(room domain.Room) *domain.Error {
	if room.Availability <= 0 {
		return domain.ErrRoomUnavailable
	}
	return nil
}

// FindReservation returns the index of the reservation with the given id.
func FindReservation(reservations []domain.Reservation, id string) (int, *domain.Error) {
	for i := range reservations {
		if reservations[i].ID == id {
			return i, nil
		}
	}
	return -1, domain.ErrReservationNotFound
}
