package reservations

import (
	"context"
	"slices"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/events"
	"github.com/preston-bernstein/travel-reservations-service/internal/logging"
	"github.com/preston-bernstein/travel-reservations-service/internal/timeutil"
	"github.com/preston-bernstein/travel-reservations-service/internal/validation"
)

// Create books one unit of a room for a guest.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (res domain.Reservation, err error) {
	ctx, done := s.begin(ctx, OpCreate)
	defer func() { done(err) }()

	if derr := validation.RequireCreateFields(req); derr != nil {
		return domain.Reservation{}, derr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return domain.Reservation{}, err
	}
	// Room checks come first; guest name and dates are only checked for a bookable room.
	idx, derr := validation.FindRoom(snap.Rooms, *req.RoomID)
	if derr != nil {
		return domain.Reservation{}, derr
	}
	if derr := validation.RoomBookable(snap.Rooms[idx]); derr != nil {
		return domain.Reservation{}, derr
	}
	name, derr := validation.GuestName(*req.GuestName)
	if derr != nil {
		return domain.Reservation{}, derr
	}
	if derr := validation.DateRange(*req.CheckIn, *req.CheckOut); derr != nil {
		return domain.Reservation{}, derr
	}

	now := s.now()
	res = domain.Reservation{
		ID:        s.newID(),
		RoomID:    *req.RoomID,
		GuestName: name,
		CheckIn:   *req.CheckIn,
		CheckOut:  *req.CheckOut,
		CreatedAt: timeutil.Timestamp(now),
	}
	snap.Rooms[idx].Availability--
	snap.Reservations = append(snap.Reservations, res)

	if err := s.save(ctx, snap); err != nil {
		return domain.Reservation{}, err
	}

	logging.Info(logging.FromContext(ctx, s.logger), "reservation created",
		logging.FieldReservationID, res.ID,
		logging.FieldRoomID, res.RoomID,
	)
	s.publish(ctx, events.New(events.TypeReservationCreated, res, now))
	return res, nil
}

// Update applies the supplied fields of req to an existing reservation.
// ID and CreatedAt never change. Moving rooms frees the old unit and takes a new one.
func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (res domain.Reservation, err error) {
	ctx, done := s.begin(ctx, OpUpdate)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return domain.Reservation{}, err
	}
	ri, derr := validation.FindReservation(snap.Reservations, id)
	if derr != nil {
		return domain.Reservation{}, derr
	}
	if derr := validation.RequireUpdateFields(req); derr != nil {
		return domain.Reservation{}, derr
	}

	current := snap.Reservations[ri]
	updated := current

	if req.GuestName != nil {
		name, derr := validation.GuestName(*req.GuestName)
		if derr != nil {
			return domain.Reservation{}, derr
		}
		updated.GuestName = name
	}

	newRoom := -1
	if req.RoomID != nil && *req.RoomID != current.RoomID {
		idx, derr := validation.FindRoom(snap.Rooms, *req.RoomID)
		if derr != nil {
			return domain.Reservation{}, derr
		}
		if derr := validation.RoomBookable(snap.Rooms[idx]); derr != nil {
			return domain.Reservation{}, derr
		}
		newRoom = idx
		updated.RoomID = *req.RoomID
	}

	if req.CheckIn != nil {
		updated.CheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		updated.CheckOut = *req.CheckOut
	}
	if req.CheckIn != nil || req.CheckOut != nil {
		if derr := validation.DateRange(updated.CheckIn, updated.CheckOut); derr != nil {
			return domain.Reservation{}, derr
		}
	}

	var previousRoom *int
	if newRoom >= 0 {
		if old, derr := validation.FindRoom(snap.Rooms, current.RoomID); derr == nil {
			snap.Rooms[old].Availability++
		}
		snap.Rooms[newRoom].Availability--
		prev := current.RoomID
		previousRoom = &prev
	}
	snap.Reservations[ri] = updated

	if err := s.save(ctx, snap); err != nil {
		return domain.Reservation{}, err
	}

	logging.Info(logging.FromContext(ctx, s.logger), "reservation updated",
		logging.FieldReservationID, updated.ID,
		logging.FieldRoomID, updated.RoomID,
	)
	evt := events.New(events.TypeReservationUpdated, updated, s.now())
	evt.PreviousRoomID = previousRoom
	s.publish(ctx, evt)
	return updated, nil
}

// Cancel removes a reservation and returns its unit to the room when the room still exists.
func (s *Service) Cancel(ctx context.Context, id string) (err error) {
	ctx, done := s.begin(ctx, OpCancel)
	defer func() { done(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	ri, derr := validation.FindReservation(snap.Reservations, id)
	if derr != nil {
		return derr
	}

	cancelled := snap.Reservations[ri]
	if idx, derr := validation.FindRoom(snap.Rooms, cancelled.RoomID); derr == nil {
		snap.Rooms[idx].Availability++
	}
	snap.Reservations = slices.Delete(snap.Reservations, ri, ri+1)

	if err := s.save(ctx, snap); err != nil {
		return err
	}

	logging.Info(logging.FromContext(ctx, s.logger), "reservation cancelled",
		logging.FieldReservationID, cancelled.ID,
		logging.FieldRoomID, cancelled.RoomID,
	)
	s.publish(ctx, events.New(events.TypeReservationCancelled, cancelled, s.now()))
	return nil
}
