// Package events defines reservation lifecycle messages and the publishers
// that deliver them after a successful save.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
)

// Type names a reservation lifecycle transition.
type Type string

const (
	TypeReservationCreated   Type = "reservation.created"
	TypeReservationUpdated   Type = "reservation.updated"
	TypeReservationCancelled Type = "reservation.cancelled"
)

// Event is the payload published for every committed reservation change.
type Event struct {
	ID          string             `json:"id"`
	Type        Type               `json:"type"`
	OccurredAt  time.Time          `json:"occurredAt"`
	Reservation domain.Reservation `json:"reservation"`
	// PreviousRoomID is set on updates that moved the reservation.
	PreviousRoomID *int `json:"previousRoomId,omitempty"`
}

// New builds an event stamped with a fresh id.
func New(typ Type, res domain.Reservation, at time.Time) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        typ,
		OccurredAt:  at.UTC(),
		Reservation: res,
	}
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
