package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failed operation. Adapters translate kinds into transport responses.
type Kind string

const (
	KindMissingField        Kind = "MissingField"
	KindInvalidJSON         Kind = "InvalidJSON"
	KindNoUpdatableFields   Kind = "NoUpdatableFields"
	KindEmptyGuestName      Kind = "EmptyGuestName"
	KindRoomNotFound        Kind = "RoomNotFound"
	KindRoomUnavailable     Kind = "RoomUnavailable"
	KindInvalidDateFormat   Kind = "InvalidDateFormat"
	KindInvalidDateOrder    Kind = "InvalidDateOrder"
	KindReservationNotFound Kind = "ReservationNotFound"
	KindInternal            Kind = "InternalError"
)

// Error is the only error type returned across the service boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindInternal {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds an Error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Internal wraps an unexpected failure. The cause is kept for logging only.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf returns the kind carried by err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// PublicMessage returns the message safe to show to callers.
func PublicMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// Canonical errors for the fixed-message kinds.
var (
	ErrInvalidJSON         = NewError(KindInvalidJSON, "Invalid JSON body")
	ErrNoUpdatableFields   = NewError(KindNoUpdatableFields, "No valid fields to update")
	ErrEmptyGuestName      = NewError(KindEmptyGuestName, "Guest name cannot be empty")
	ErrRoomNotFound        = NewError(KindRoomNotFound, "Room not found")
	ErrRoomUnavailable     = NewError(KindRoomUnavailable, "Room not available")
	ErrInvalidDateFormat   = NewError(KindInvalidDateFormat, "Invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateOrder    = NewError(KindInvalidDateOrder, "Check-out date must be after check-in date")
	ErrReservationNotFound = NewError(KindReservationNotFound, "Reservation not found")
)

// MissingField reports the first absent required field.
func MissingField(field string) *Error {
	return NewError(KindMissingField, "Missing required field: "+field)
}

// InvalidValue reports a field whose value has the wrong shape.
func InvalidValue(field string) *Error {
	return NewError(KindInvalidJSON, "Invalid value for "+field)
}
